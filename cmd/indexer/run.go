package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/javaBin/search-indexer/internal/config"
)

func newRunCmd() *cobra.Command {
	var (
		file     string
		recreate bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reindex once and exit",
		Long: `Collect every file from the configured source and index it, then exit.

Use --file to reindex a single file by its key.
Use --recreate to drop and recreate the index before a full reindex.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			if recreate {
				config.GetConfig(ctx).Index.Recreate = true
			}

			pipeline, err := newPipeline(cmd)
			if err != nil {
				return err
			}

			if file != "" {
				if err := pipeline.ReindexFile(ctx, file); err != nil {
					slog.Error("failed to reindex file", "key", file, "error", err)
					return err
				}
				return nil
			}

			if err := pipeline.ReindexAll(ctx); err != nil {
				slog.Error("failed to reindex files", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Reindex a single file by key")
	cmd.Flags().BoolVar(&recreate, "recreate", false, "Recreate the index before a full reindex")

	return cmd
}
