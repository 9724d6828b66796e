// Package sync implements the reconciliation engine: it batches video IDs,
// normalizes fetched metadata, resolves owning channels with get-or-create
// semantics, and upserts video pages with diff-gated writes.
package sync

import (
	"context"

	"github.com/clipnote/clipnote/pkg/catalog"
	"github.com/clipnote/clipnote/pkg/errors"
	"github.com/clipnote/clipnote/pkg/notion"
)

// CatalogClient fetches raw metadata from the video catalog. Implemented by
// internal/youtube; faked in tests.
type CatalogClient interface {
	// Videos fetches raw video resources for up to one batch of IDs.
	Videos(ctx context.Context, ids []string) ([]catalog.RawVideo, error)

	// Channel fetches a channel resource, or (nil, nil) if unknown.
	Channel(ctx context.Context, id string) (*catalog.RawChannel, error)

	// CategoryName resolves a category ID to a name, or ("", nil) if unknown.
	CategoryName(ctx context.Context, id string) (string, error)
}

// Store is the remote structured store the engine reconciles against.
// Queried pages carry their current property values. Implemented by
// pkg/notion.
type Store interface {
	// Query returns pages whose named property exactly equals the value.
	Query(ctx context.Context, databaseID, property, equals string) ([]notion.Page, error)

	// CreatePage creates a page and returns its store-assigned ID.
	CreatePage(ctx context.Context, create *notion.PageCreate) (string, error)

	// UpdatePage patches an existing page.
	UpdatePage(ctx context.Context, pageID string, patch *notion.PagePatch) error
}

// Syncer drives the reconciliation of video IDs against the remote store.
// It is single-writer and sequential: one batch, one video, one channel
// resolution at a time. It holds no state across runs beyond its
// configuration; existence and equality are re-derived from the store on
// every run.
type Syncer struct {
	catalog    CatalogClient
	store      Store
	normalizer *catalog.Normalizer

	videoDB   string
	channelDB string
	batchSize int
	dryRun    bool

	// Per-run memoization of channel and category lookups, so N videos of
	// one channel cost one catalog call and one resolution. Reset by Run.
	channelData map[string]*catalog.RawChannel
	channelRefs map[string]string
	categories  map[string]string
}

// New creates a Syncer writing to the given video and channel databases.
func New(catalogClient CatalogClient, store Store, videoDB, channelDB string, opts ...Option) (*Syncer, error) {
	if catalogClient == nil || store == nil {
		return nil, errors.NewValidationError("clients", nil, "catalog client and store are required")
	}
	if videoDB == "" || channelDB == "" {
		return nil, errors.NewValidationError("databases", nil, "video and channel database IDs are required")
	}

	s := &Syncer{
		catalog:   catalogClient,
		store:     store,
		videoDB:   videoDB,
		channelDB: channelDB,
		batchSize: DefaultBatchSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.normalizer == nil {
		n, err := catalog.NewNormalizer("")
		if err != nil {
			return nil, err
		}
		s.normalizer = n
	}

	return s, nil
}
