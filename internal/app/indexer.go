package app

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/javaBin/search-indexer/internal/config"
	"github.com/javaBin/search-indexer/internal/domain"
	"github.com/javaBin/search-indexer/internal/ports"
)

// Indexer bridges file records from a collection pipeline to a remote search index.
// The connection is created lazily on first use and reused afterwards.
type Indexer struct {
	options   Options
	connector ports.Connector
	logger    *slog.Logger

	mu     sync.RWMutex
	client ports.SearchClient
	index  ports.SearchIndex
}

// NewIndexer creates a new Indexer. It keeps its own copy of opts and does not connect.
func NewIndexer(opts Options, connector ports.Connector) *Indexer {
	return &Indexer{
		options:   opts.clone(),
		connector: connector,
		logger:    slog.Default().With("component", "indexer"),
	}
}

// NewIndexerFromContext creates a new Indexer from the configuration carried in ctx
func NewIndexerFromContext(ctx context.Context, connector ports.Connector) *Indexer {
	cfg := config.GetConfig(ctx)
	return NewIndexer(OptionsFromConfig(cfg), connector)
}

// Init connects to the remote search service and binds the target index.
// It is a no-op once connected; override is ignored in that case.
// A failed attempt leaves the indexer disconnected so the next call tries again.
func (i *Indexer) Init(ctx context.Context, override Options) error {
	i.mu.RLock()
	if i.index != nil {
		i.mu.RUnlock()
		return nil
	}
	i.mu.RUnlock()

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double-check after acquiring write lock
	if i.index != nil {
		return nil
	}

	opts := i.options.Merge(override)
	if opts.Index == "" {
		return &ConfigurationError{Err: ErrIndexRequired}
	}
	if i.connector == nil {
		return &ConfigurationError{Err: errNoConnector}
	}

	client, err := i.connector.Connect(ctx, opts.Credentials())
	if err != nil {
		return &ConnectionError{Err: err}
	}

	i.client = client
	i.index = client.InitIndex(opts.Index)

	i.logger.InfoContext(ctx, "connected to search index", "index", opts.Index)
	return nil
}

// SearchIndex returns the bound index handle, or nil while disconnected
func (i *Indexer) SearchIndex() ports.SearchIndex {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.index
}

// Collect turns a file into a document. A nil document with a nil error means
// the file was skipped and must not be indexed.
func (i *Indexer) Collect(ctx context.Context, file domain.File) (domain.Document, error) {
	if err := i.Init(ctx, Options{}); err != nil {
		return nil, err
	}

	if i.options.CollectFn != nil {
		doc, err := i.options.CollectFn(ctx, i.SearchIndex(), file)
		if err != nil {
			return nil, &TransformError{Key: file.Key, Err: err}
		}
		return doc, nil
	}

	return domain.NewDocument(file), nil
}

// Index submits a batch to the search index. opts may carry the only
// configuration needed to connect, and overrides the stored options for this call.
func (i *Indexer) Index(ctx context.Context, batch domain.Batch, opts Options) error {
	if err := i.Init(ctx, opts); err != nil {
		return err
	}

	merged := i.options.Merge(opts)
	idx := i.SearchIndex()

	if merged.IndexFn != nil {
		return merged.IndexFn(ctx, idx, batch, opts)
	}

	var g errgroup.Group
	if merged.Concurrency > 0 {
		g.SetLimit(merged.Concurrency)
	}

	for key, doc := range batch {
		if doc == nil {
			continue
		}
		g.Go(func() error {
			if err := idx.AddObject(ctx, doc); err != nil {
				i.logger.ErrorContext(ctx, "failed to index document",
					"index", idx.Name(),
					"key", key,
					"error", err,
				)
				return &SubmissionError{Key: key, Err: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	i.logger.DebugContext(ctx, "indexed batch", "index", idx.Name(), "count", batch.Len())
	return nil
}
