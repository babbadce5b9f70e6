package api

import (
	"log/slog"

	"github.com/javaBin/search-indexer/internal/ports"
)

// Adapter holds the HTTP handler dependencies
type Adapter struct {
	reindexer ports.Reindexer
	logger    *slog.Logger
}

// New creates a new API adapter with the provided reindexer
func New(reindexer ports.Reindexer) *Adapter {
	return &Adapter{
		reindexer: reindexer,
		logger:    slog.Default().With("component", "api"),
	}
}
