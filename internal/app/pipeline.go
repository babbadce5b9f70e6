package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"

	"github.com/javaBin/search-indexer/internal/config"
	"github.com/javaBin/search-indexer/internal/domain"
	"github.com/javaBin/search-indexer/internal/ports"
)

// Pipeline feeds files from a source through an Indexer
type Pipeline struct {
	source   ports.FileSource
	indexer  *Indexer
	mapping  string
	recreate bool
	logger   *slog.Logger
}

// NewPipeline creates a new Pipeline, receiving context as first parameter
// to retrieve configuration, along with the required dependencies.
func NewPipeline(ctx context.Context, source ports.FileSource, indexer *Indexer, mapping string) *Pipeline {
	cfg := config.GetConfig(ctx)
	return NewPipelineWithConfig(source, indexer, mapping, cfg.Index.Recreate)
}

// NewPipelineWithConfig creates a new Pipeline with explicit configuration.
// This constructor is primarily intended for testing purposes.
func NewPipelineWithConfig(source ports.FileSource, indexer *Indexer, mapping string, recreate bool) *Pipeline {
	return &Pipeline{
		source:   source,
		indexer:  indexer,
		mapping:  mapping,
		recreate: recreate,
		logger:   slog.Default().With("component", "pipeline"),
	}
}

// ReindexAll collects every file from the source and indexes the resulting batch.
// Files that fail to collect are logged and skipped; their errors are returned
// together once the remaining documents have been indexed.
func (p *Pipeline) ReindexAll(ctx context.Context) error {
	p.logger.InfoContext(ctx, "starting full reindex")

	files, err := p.source.Files(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch files: %w", err)
	}

	p.logger.InfoContext(ctx, "fetched files", "count", len(files))

	if err := p.indexer.Init(ctx, Options{}); err != nil {
		return err
	}
	if err := p.prepareIndex(ctx, p.recreate); err != nil {
		return err
	}

	batch, collectErr := p.collect(ctx, files)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if batch.Len() == 0 {
		p.logger.WarnContext(ctx, "no documents to index")
		return collectErr
	}

	if err := p.indexer.Index(ctx, batch, Options{}); err != nil {
		return fmt.Errorf("failed to index documents: %w", err)
	}

	p.logger.InfoContext(ctx, "full reindex completed",
		"files", len(files),
		"indexed", batch.Len(),
		"failed", countErrors(collectErr),
	)

	return collectErr
}

// ReindexFile collects and indexes a single file by its key.
// A file skipped by the collect function is not indexed.
func (p *Pipeline) ReindexFile(ctx context.Context, key string) error {
	p.logger.InfoContext(ctx, "starting reindex for file", "key", key)

	file, err := p.source.File(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to fetch file %s: %w", key, err)
	}

	if err := p.indexer.Init(ctx, Options{}); err != nil {
		return err
	}
	if err := p.prepareIndex(ctx, false); err != nil {
		return err
	}

	doc, err := p.indexer.Collect(ctx, *file)
	if err != nil {
		return err
	}
	if doc == nil {
		p.logger.InfoContext(ctx, "file skipped by collect", "key", key)
		return nil
	}

	if err := p.indexer.Index(ctx, domain.Batch{file.Key: doc}, Options{}); err != nil {
		return fmt.Errorf("failed to index file %s: %w", key, err)
	}

	p.logger.InfoContext(ctx, "file reindex completed", "key", key)
	return nil
}

// collect turns files into a batch. Transform errors are aggregated and do not
// stop collection; any other error (such as a lost connection) aborts it.
func (p *Pipeline) collect(ctx context.Context, files []domain.File) (domain.Batch, error) {
	batch := make(domain.Batch, len(files))
	var errs *multierror.Error
	skipped, failed := 0, 0

	for _, file := range files {
		select {
		case <-ctx.Done():
			return batch, multierror.Append(errs, ctx.Err())
		default:
		}

		doc, err := p.indexer.Collect(ctx, file)
		if err != nil {
			var transformErr *TransformError
			if !errors.As(err, &transformErr) {
				return nil, err
			}
			p.logger.ErrorContext(ctx, "failed to collect file", "key", file.Key, "error", err)
			errs = multierror.Append(errs, err)
			failed++
			continue
		}

		if doc == nil {
			skipped++
			continue
		}
		batch[file.Key] = doc
	}

	p.logger.InfoContext(ctx, "collected documents",
		"collected", batch.Len(),
		"skipped", skipped,
		"failed", failed,
	)

	return batch, errs.ErrorOrNil()
}

// prepareIndex creates or recreates the target index when the bound index
// supports lifecycle management
func (p *Pipeline) prepareIndex(ctx context.Context, recreate bool) error {
	manager, ok := p.indexer.SearchIndex().(ports.IndexManager)
	if !ok || p.mapping == "" {
		return nil
	}

	if recreate {
		if err := manager.RecreateIndex(ctx, p.mapping); err != nil {
			return fmt.Errorf("failed to recreate index: %w", err)
		}
		return nil
	}

	if err := manager.EnsureIndex(ctx, p.mapping); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}
	return nil
}

// countErrors returns the number of errors aggregated in err
func countErrors(err error) int {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return len(merr.Errors)
	}
	if err != nil {
		return 1
	}
	return 0
}
