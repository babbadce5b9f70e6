package app

import (
	"context"
	"fmt"

	"github.com/javaBin/search-indexer/internal/domain"
	"github.com/javaBin/search-indexer/internal/ports"
)

// BulkIndexFn is an IndexFunc that sends the whole batch in a single request
// instead of one request per document.
func BulkIndexFn(ctx context.Context, idx ports.SearchIndex, batch domain.Batch, _ Options) error {
	docs := batch.Documents()
	if len(docs) == 0 {
		return nil
	}
	if err := idx.AddObjects(ctx, docs); err != nil {
		return fmt.Errorf("failed to bulk index %d documents: %w", len(docs), err)
	}
	return nil
}

// RequireFields returns a CollectFunc that skips files missing any of the
// named data fields and applies the default mapping to the rest.
func RequireFields(fields ...string) CollectFunc {
	return func(_ context.Context, _ ports.SearchIndex, file domain.File) (domain.Document, error) {
		for _, field := range fields {
			if v, ok := file.Field(field); !ok || v == nil || v == "" {
				return nil, nil
			}
		}
		return domain.NewDocument(file), nil
	}
}
