package sync

import (
	"context"

	"github.com/clipnote/clipnote/pkg/catalog"
	"github.com/clipnote/clipnote/pkg/logging"
	"github.com/clipnote/clipnote/pkg/notion"
)

// dryRunRef stands in for a page ID when a dry run suppresses the create
// that would have produced one.
const dryRunRef = "dry-run"

// resolveChannel returns the page ID of the channel's record in the channel
// database, creating it if absent and patching it if its stored fields
// differ. At most one query and one write are issued per call; repeated
// calls with unchanged input find the record and write nothing.
func (s *Syncer) resolveChannel(ctx context.Context, ch catalog.Channel) (string, error) {
	log := logging.Ctx(ctx)

	pages, err := s.store.Query(ctx, s.channelDB, notion.PropChannelID, ch.ID)
	if err != nil {
		return "", err
	}

	if len(pages) > 0 {
		page := pages[0]
		changed := Diff(notion.ChannelFields(&page), notion.ChannelFieldMap(ch))
		if len(changed) == 0 {
			return page.ID, nil
		}

		log.Info().Str("channel_id", ch.ID).Strs("fields", changed).Bool("dry_run", s.dryRun).
			Msg("channel fields differ, updating")
		if s.dryRun {
			return page.ID, nil
		}

		patch := &notion.PagePatch{Properties: notion.ChannelProperties(ch)}
		if err := s.store.UpdatePage(ctx, page.ID, patch); err != nil {
			return "", err
		}
		return page.ID, nil
	}

	log.Info().Str("channel_id", ch.ID).Str("channel", ch.Name).Bool("dry_run", s.dryRun).
		Msg("channel not in store, creating")
	if s.dryRun {
		return dryRunRef, nil
	}

	create := &notion.PageCreate{
		Parent:     notion.Parent{DatabaseID: s.channelDB},
		Properties: notion.ChannelProperties(ch),
	}
	if ch.LogoURL != "" {
		create.Icon = notion.ExternalFile(ch.LogoURL)
	}

	return s.store.CreatePage(ctx, create)
}

// channelRef memoizes resolveChannel per run so every video of a channel
// reuses the first resolution.
func (s *Syncer) channelRef(ctx context.Context, ch catalog.Channel) (string, error) {
	if ref, ok := s.channelRefs[ch.ID]; ok {
		return ref, nil
	}

	ref, err := s.resolveChannel(ctx, ch)
	if err != nil {
		return "", err
	}
	s.channelRefs[ch.ID] = ref
	return ref, nil
}
