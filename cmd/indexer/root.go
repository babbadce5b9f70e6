package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/javaBin/search-indexer/internal/adapters/elasticsearch"
	"github.com/javaBin/search-indexer/internal/adapters/feed"
	"github.com/javaBin/search-indexer/internal/adapters/filesystem"
	"github.com/javaBin/search-indexer/internal/app"
	"github.com/javaBin/search-indexer/internal/config"
	"github.com/javaBin/search-indexer/internal/ports"
)

// newRootCmd creates the root command for the search-indexer CLI
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search-indexer",
		Short: "Index files into a remote search index",
		Long: `search-indexer collects files from a local directory or a remote feed
and submits them as documents to a hosted search index.

Configuration is read from environment variables and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			setupLogging(os.Stdout, cfg)
			cmd.SetContext(config.WithConfig(cmd.Context(), cfg))
			return nil
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newRunCmd())

	return cmd
}

// setupLogging configures the default logger based on mode
func setupLogging(w io.Writer, cfg *config.Config) {
	var logger *slog.Logger
	if cfg.Mode.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	slog.SetDefault(logger)

	logger.Info("configuration loaded",
		"mode", cfg.Mode,
		"httpAddr", cfg.Http.Addr(),
		"source", cfg.Source.Kind(),
		"searchURL", cfg.Search.URL,
		"cloud", cfg.Search.ApplicationID != "",
		"authenticated", cfg.Search.HasCredentials(),
		"index", cfg.Index.Name,
		"bulk", cfg.Index.Bulk,
		"concurrency", cfg.Index.Concurrency,
	)
}

// newPipeline wires the configured file source and the Elasticsearch connector into a pipeline.
// The connection itself is made on first use.
func newPipeline(cmd *cobra.Command) (*app.Pipeline, error) {
	ctx := cmd.Context()

	source, err := newSource(cmd)
	if err != nil {
		return nil, err
	}

	indexer := app.NewIndexerFromContext(ctx, elasticsearch.NewConnector())
	return app.NewPipeline(ctx, source, indexer, elasticsearch.DocumentIndexMapping), nil
}

// newSource creates the file source selected by configuration
func newSource(cmd *cobra.Command) (ports.FileSource, error) {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)

	switch cfg.Source.Kind() {
	case config.SourceFilesystem:
		source, err := filesystem.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create filesystem source: %w", err)
		}
		slog.Info("filesystem source initialized", "dir", cfg.Source.Dir)
		return source, nil
	case config.SourceFeed:
		source, err := feed.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create feed source: %w", err)
		}
		slog.Info("feed source initialized",
			"url", cfg.Source.FeedURL,
			"authenticated", cfg.Source.HasFeedCredentials(),
		)
		return source, nil
	default:
		return nil, fmt.Errorf("no file source configured: set SOURCE_DIR or SOURCE_FEED_URL")
	}
}
