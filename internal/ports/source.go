package ports

import (
	"context"
	"errors"

	"github.com/javaBin/search-indexer/internal/domain"
)

// ErrFileNotFound is returned by a FileSource when the requested key does not exist
var ErrFileNotFound = errors.New("file not found")

// FileSource defines the interface for fetching file records to index
type FileSource interface {
	// Files retrieves all file records from the source
	Files(ctx context.Context) ([]domain.File, error)

	// File retrieves a single file record by its key
	File(ctx context.Context, key string) (*domain.File, error)
}
