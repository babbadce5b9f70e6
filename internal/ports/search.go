package ports

import (
	"context"

	"github.com/javaBin/search-indexer/internal/domain"
)

// SearchIndex is a handle bound to one named index in the remote search service.
// Handles are shared by concurrent submissions and must be safe for concurrent use.
type SearchIndex interface {
	// Name returns the name of the bound index
	Name() string

	// AddObject submits a single document, keyed by its identifier
	AddObject(ctx context.Context, doc domain.Document) error

	// AddObjects submits several documents in one request
	AddObjects(ctx context.Context, docs []domain.Document) error
}

// SearchClient is a connection to the remote search service
type SearchClient interface {
	// InitIndex returns a handle bound to the named index. It does not contact the service.
	InitIndex(name string) SearchIndex
}

// Connector opens connections to the remote search service
type Connector interface {
	// Connect creates a client for the given account and verifies it can reach the service
	Connect(ctx context.Context, creds domain.Credentials) (SearchClient, error)
}

// IndexManager is implemented by index handles that can manage their own lifecycle.
// Callers should type-assert a SearchIndex to discover it.
type IndexManager interface {
	// EnsureIndex creates the index with the given mapping if it does not exist
	EnsureIndex(ctx context.Context, mapping string) error

	// RecreateIndex deletes the index if present and creates it with the given mapping
	RecreateIndex(ctx context.Context, mapping string) error
}
