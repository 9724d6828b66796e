package sync

import (
	"context"

	"github.com/clipnote/clipnote/pkg/catalog"
	"github.com/clipnote/clipnote/pkg/logging"
	"github.com/clipnote/clipnote/pkg/notion"
)

// upsertVideo reconciles one normalized video against the video database.
// An empty ownerRef means the owning channel could not be resolved: the
// video is skipped without any remote call, because a video page is never
// created without its channel relation.
func (s *Syncer) upsertVideo(ctx context.Context, v catalog.Video, ownerRef string) (Outcome, error) {
	if ownerRef == "" {
		return OutcomeSkipped, nil
	}

	log := logging.Ctx(ctx)

	pages, err := s.store.Query(ctx, s.videoDB, notion.PropVideoID, v.ID)
	if err != nil {
		return "", err
	}

	if len(pages) > 0 {
		page := pages[0]
		changed := Diff(notion.VideoFields(&page), notion.VideoFieldMap(v))
		if len(changed) == 0 {
			log.Debug().Str("video_id", v.ID).Msg("video unchanged")
			return OutcomeUnchanged, nil
		}

		log.Info().Str("video_id", v.ID).Strs("fields", changed).Bool("dry_run", s.dryRun).
			Msg("video fields differ, updating")
		if s.dryRun {
			return OutcomeUpdated, nil
		}

		if err := s.store.UpdatePage(ctx, page.ID, videoPatch(v, changed)); err != nil {
			return "", err
		}
		return OutcomeUpdated, nil
	}

	log.Info().Str("video_id", v.ID).Str("title", v.Title).Bool("dry_run", s.dryRun).
		Msg("video not in store, creating")
	if s.dryRun {
		return OutcomeCreated, nil
	}

	create := &notion.PageCreate{
		Parent:     notion.Parent{DatabaseID: s.videoDB},
		Properties: notion.VideoProperties(v, ownerRef),
	}
	if v.ThumbnailURL != "" {
		create.Cover = notion.ExternalFile(v.ThumbnailURL)
	}

	if _, err := s.store.CreatePage(ctx, create); err != nil {
		return "", err
	}
	return OutcomeCreated, nil
}

// videoPatch builds an update carrying only the changed fields plus the
// identity field. The channel relation is never patched: it is established
// at creation time only.
func videoPatch(v catalog.Video, changed []string) *notion.PagePatch {
	full := notion.VideoProperties(v, "")

	props := map[string]notion.Property{
		notion.PropVideoID: full[notion.PropVideoID],
	}
	for _, field := range changed {
		if prop, ok := full[field]; ok {
			props[field] = prop
		}
	}

	patch := &notion.PagePatch{Properties: props}
	if v.ThumbnailURL != "" {
		patch.Cover = notion.ExternalFile(v.ThumbnailURL)
	}
	return patch
}
