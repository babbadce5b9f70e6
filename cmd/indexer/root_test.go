package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javaBin/search-indexer/internal/adapters/feed"
	"github.com/javaBin/search-indexer/internal/adapters/filesystem"
	"github.com/javaBin/search-indexer/internal/config"
)

// captureLogs routes the default logger into a buffer for the duration of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func commandWithConfig(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(config.WithConfig(context.Background(), cfg))
	return cmd
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"serve", "run"}, names)

	run, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)
	assert.NotNil(t, run.Flags().Lookup("file"))
	assert.NotNil(t, run.Flags().Lookup("recreate"))
}

func TestNewSource(t *testing.T) {
	t.Run("filesystem", func(t *testing.T) {
		cmd := commandWithConfig(&config.Config{
			Source: config.SourceConfig{Dir: t.TempDir(), Extensions: []string{".md"}},
		})

		source, err := newSource(cmd)

		require.NoError(t, err)
		assert.IsType(t, &filesystem.Source{}, source)
	})

	t.Run("feed", func(t *testing.T) {
		cmd := commandWithConfig(&config.Config{
			Source: config.SourceConfig{FeedURL: "https://feed.example.com"},
		})

		source, err := newSource(cmd)

		require.NoError(t, err)
		assert.IsType(t, &feed.Client{}, source)
	})

	t.Run("feed credentials are reported", func(t *testing.T) {
		logs := captureLogs(t)
		cmd := commandWithConfig(&config.Config{
			Source: config.SourceConfig{
				FeedURL:      "https://feed.example.com",
				FeedUser:     "indexer",
				FeedPassword: "hunter2",
			},
		})

		_, err := newSource(cmd)

		require.NoError(t, err)
		assert.Contains(t, logs.String(), "authenticated=true")
		assert.NotContains(t, logs.String(), "hunter2")
	})

	t.Run("nothing configured", func(t *testing.T) {
		cmd := commandWithConfig(&config.Config{})

		source, err := newSource(cmd)

		require.Error(t, err)
		assert.Nil(t, source)
		assert.Contains(t, err.Error(), "no file source configured")
	})

	t.Run("missing directory", func(t *testing.T) {
		cmd := commandWithConfig(&config.Config{
			Source: config.SourceConfig{Dir: "/does/not/exist"},
		})

		_, err := newSource(cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create filesystem source")
	})
}

func TestSetupLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("reports search credentials", func(t *testing.T) {
		buf := &bytes.Buffer{}

		setupLogging(buf, &config.Config{
			ApplicationConfig: config.ApplicationConfig{Mode: config.ModeDevelopment},
			Search:            config.SearchConfig{APIKey: "key"},
		})

		assert.Contains(t, buf.String(), "configuration loaded")
		assert.Contains(t, buf.String(), "authenticated=true")
	})

	t.Run("anonymous in production uses json", func(t *testing.T) {
		buf := &bytes.Buffer{}

		setupLogging(buf, &config.Config{
			ApplicationConfig: config.ApplicationConfig{Mode: config.ModeProduction},
		})

		assert.Contains(t, buf.String(), `"authenticated":false`)
	})
}

func TestNewPipeline(t *testing.T) {
	cmd := commandWithConfig(&config.Config{
		Index:  config.IndexConfig{Name: "documents"},
		Source: config.SourceConfig{Dir: t.TempDir()},
	})

	pipeline, err := newPipeline(cmd)

	require.NoError(t, err)
	assert.NotNil(t, pipeline)
}
