package sync

import "github.com/clipnote/clipnote/pkg/catalog"

// DefaultBatchSize is the number of video IDs fetched per catalog call,
// matching the YouTube videos.list per-call limit.
const DefaultBatchSize = 50

// Option configures a Syncer.
type Option func(*Syncer)

// WithBatchSize overrides the catalog fetch chunk size. Values outside
// 1..DefaultBatchSize are clamped.
func WithBatchSize(size int) Option {
	return func(s *Syncer) {
		if size < 1 {
			size = 1
		}
		if size > DefaultBatchSize {
			size = DefaultBatchSize
		}
		s.batchSize = size
	}
}

// WithDryRun suppresses all writes: the engine queries and diffs as normal
// but reports would-be outcomes instead of creating or updating pages.
func WithDryRun(dryRun bool) Option {
	return func(s *Syncer) {
		s.dryRun = dryRun
	}
}

// WithNormalizer replaces the default normalizer, e.g. to render timestamps
// in a different target timezone.
func WithNormalizer(n *catalog.Normalizer) Option {
	return func(s *Syncer) {
		s.normalizer = n
	}
}
