package api

import (
	"context"
	"testing"

	"github.com/javaBin/search-indexer/internal/ports"
	"github.com/stretchr/testify/assert"
)

// mockReindexer is a mock implementation of ports.Reindexer for testing
type mockReindexer struct {
	reindexAllFunc  func(ctx context.Context) error
	reindexFileFunc func(ctx context.Context, key string) error
}

func (m *mockReindexer) ReindexAll(ctx context.Context) error {
	if m.reindexAllFunc != nil {
		return m.reindexAllFunc(ctx)
	}
	return nil
}

func (m *mockReindexer) ReindexFile(ctx context.Context, key string) error {
	if m.reindexFileFunc != nil {
		return m.reindexFileFunc(ctx, key)
	}
	return nil
}

func TestNew(t *testing.T) {
	reindexer := &mockReindexer{}
	adapter := New(reindexer)

	assert.NotNil(t, adapter)
	assert.Equal(t, reindexer, adapter.reindexer)
	assert.NotNil(t, adapter.logger)
}

func TestMockReindexer_InterfaceCompliance(t *testing.T) {
	var _ ports.Reindexer = (*mockReindexer)(nil)
}
