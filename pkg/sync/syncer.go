package sync

import (
	"context"

	"github.com/clipnote/clipnote/pkg/catalog"
	"github.com/clipnote/clipnote/pkg/errors"
	"github.com/clipnote/clipnote/pkg/logging"
)

// Run reconciles the given video IDs against the remote store and returns a
// summary. Per-item failures are logged and counted, never propagated; a
// chunk whose catalog fetch fails is skipped whole, its IDs counted as
// failed. Only an empty ID list aborts before any remote call.
func (s *Syncer) Run(ctx context.Context, ids []string) (*Result, error) {
	if len(ids) == 0 {
		return nil, errors.NewValidationError("ids", ids, "no video IDs supplied")
	}

	log := logging.Ctx(ctx)

	// Fresh memos: nothing survives between runs.
	s.channelData = make(map[string]*catalog.RawChannel)
	s.channelRefs = make(map[string]string)
	s.categories = make(map[string]string)

	result := &Result{Total: len(ids), DryRun: s.dryRun}

	for _, chunk := range chunkIDs(ids, s.batchSize) {
		items, err := s.catalog.Videos(ctx, chunk)
		if err != nil {
			log.Error().Err(err).Int("chunk_size", len(chunk)).Msg("chunk fetch failed, skipping chunk")
			result.Failed += len(chunk)
			continue
		}

		if len(items) < len(chunk) {
			missing := len(chunk) - len(items)
			log.Warn().Int("missing", missing).Msg("catalog did not return all requested videos")
			result.Failed += missing
		}

		for _, raw := range items {
			if err := s.syncVideo(ctx, raw, result); err != nil {
				log.Error().Err(err).Str("video_id", raw.ID).Msg("video sync failed")
				result.Failed++
			}
		}
	}

	log.Info().
		Int("total", result.Total).
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Bool("dry_run", result.DryRun).
		Msg("sync run finished")

	return result, nil
}

// syncVideo runs one raw video through normalize → resolve → upsert.
func (s *Syncer) syncVideo(ctx context.Context, raw catalog.RawVideo, result *Result) error {
	v := s.normalizer.Video(raw, s.categoryName(ctx, raw.Snippet.CategoryID))
	ch := s.normalizer.Channel(raw, s.rawChannel(ctx, raw.Snippet.ChannelID))

	ownerRef, err := s.channelRef(ctx, ch)
	if err != nil {
		// The video is skipped entirely rather than created ownerless.
		result.record(OutcomeSkipped)
		logging.Ctx(ctx).Error().Err(err).Str("video_id", v.ID).Str("channel_id", ch.ID).
			Msg("channel resolution failed, skipping video")
		return nil
	}

	outcome, err := s.upsertVideo(ctx, v, ownerRef)
	if err != nil {
		return errors.NewSyncError(v.ID, "upsert", err)
	}

	result.record(outcome)
	return nil
}

// rawChannel memoizes channel lookups per run. Lookup failures are soft:
// the normalizer tolerates missing channel data, so an error only costs the
// logo and custom URL.
func (s *Syncer) rawChannel(ctx context.Context, channelID string) *catalog.RawChannel {
	if channelID == "" {
		return nil
	}
	if data, ok := s.channelData[channelID]; ok {
		return data
	}

	data, err := s.catalog.Channel(ctx, channelID)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("channel_id", channelID).Msg("channel lookup failed")
		data = nil
	}
	s.channelData[channelID] = data
	return data
}

// categoryName memoizes category lookups per run. Failures are soft and
// yield an empty name.
func (s *Syncer) categoryName(ctx context.Context, categoryID string) string {
	if categoryID == "" {
		return ""
	}
	if name, ok := s.categories[categoryID]; ok {
		return name
	}

	name, err := s.catalog.CategoryName(ctx, categoryID)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("category_id", categoryID).Msg("category lookup failed")
		name = ""
	}
	s.categories[categoryID] = name
	return name
}

// chunkIDs partitions ids into chunks of at most size elements.
func chunkIDs(ids []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
