package ports

import "context"

// Reindexer defines the interface for indexing operations.
// This is implemented by the app layer Pipeline.
type Reindexer interface {
	// ReindexAll collects every file from the source and indexes the resulting batch
	ReindexAll(ctx context.Context) error

	// ReindexFile collects and indexes a single file by its key
	ReindexFile(ctx context.Context, key string) error
}
