package app

import (
	"context"

	"github.com/javaBin/search-indexer/internal/config"
	"github.com/javaBin/search-indexer/internal/domain"
	"github.com/javaBin/search-indexer/internal/ports"
)

// CollectFunc turns a file into a document. Returning a nil document skips the file.
// The live index handle is passed in so the function may consult the index.
type CollectFunc func(ctx context.Context, idx ports.SearchIndex, file domain.File) (domain.Document, error)

// IndexFunc submits a whole batch. It receives the options exactly as passed to Index.
type IndexFunc func(ctx context.Context, idx ports.SearchIndex, batch domain.Batch, opts Options) error

// Options configures an Indexer. Zero values mean "not set" and never override
// a value set elsewhere. As a consequence a per-call Options cannot reset
// Concurrency to 0 (unbounded) or clear a stored CollectFn or IndexFn; build a
// new Indexer for that.
type Options struct {
	// ApplicationID identifies the account at the remote search service
	ApplicationID string

	// APIKey is the credential used to connect
	APIKey string

	// SecretKey is used as the credential when APIKey is empty
	SecretKey string

	// Index is the name of the target index; required before connecting
	Index string

	// CollectFn replaces the default file to document mapping
	CollectFn CollectFunc

	// IndexFn replaces the default per-document submission
	IndexFn IndexFunc

	// Concurrency bounds in-flight submissions during default submission. 0 means unbounded.
	Concurrency int

	// Params holds client options the indexer does not interpret. They are passed to the connector.
	Params map[string]any
}

// OptionsFromConfig builds indexer options from the search and index configuration.
// Bulk submission and required fields select the matching strategies.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		ApplicationID: cfg.Search.ApplicationID,
		APIKey:        cfg.Search.APIKey,
		SecretKey:     cfg.Search.SecretKey,
		Index:         cfg.Index.Name,
		Concurrency:   cfg.Index.Concurrency,
		Params:        cfg.Search.Params(),
	}

	if len(cfg.Index.RequiredFields) > 0 {
		opts.CollectFn = RequireFields(cfg.Index.RequiredFields...)
	}
	if cfg.Index.Bulk {
		opts.IndexFn = BulkIndexFn
	}

	return opts
}

// Merge returns a copy of o with every set field of override applied on top.
// Params are merged key by key with override winning. Unset fields of override,
// including Concurrency 0 and nil functions, keep the value from o.
func (o Options) Merge(override Options) Options {
	out := o.clone()

	if override.ApplicationID != "" {
		out.ApplicationID = override.ApplicationID
	}
	if override.APIKey != "" {
		out.APIKey = override.APIKey
	}
	if override.SecretKey != "" {
		out.SecretKey = override.SecretKey
	}
	if override.Index != "" {
		out.Index = override.Index
	}
	if override.CollectFn != nil {
		out.CollectFn = override.CollectFn
	}
	if override.IndexFn != nil {
		out.IndexFn = override.IndexFn
	}
	if override.Concurrency != 0 {
		out.Concurrency = override.Concurrency
	}
	if len(override.Params) > 0 {
		if out.Params == nil {
			out.Params = make(map[string]any, len(override.Params))
		}
		for k, v := range override.Params {
			out.Params[k] = v
		}
	}

	return out
}

// Credentials returns the connection credentials described by the options
func (o Options) Credentials() domain.Credentials {
	key := o.APIKey
	if key == "" {
		key = o.SecretKey
	}
	return domain.Credentials{
		ApplicationID: o.ApplicationID,
		APIKey:        key,
		Params:        o.clone().Params,
	}
}

// clone returns a copy that shares no maps with o
func (o Options) clone() Options {
	out := o
	if o.Params != nil {
		out.Params = make(map[string]any, len(o.Params))
		for k, v := range o.Params {
			out.Params[k] = v
		}
	}
	return out
}
