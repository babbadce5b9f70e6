package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/javaBin/search-indexer/internal/config"
	"github.com/javaBin/search-indexer/internal/domain"
	"github.com/javaBin/search-indexer/internal/ports"
)

// Source implements ports.FileSource for a local directory tree
type Source struct {
	root       string
	extensions map[string]bool
	logger     *slog.Logger
}

// New creates a new Source, retrieving configuration from context
func New(ctx context.Context) (*Source, error) {
	cfg := config.GetConfig(ctx)
	return NewWithRoot(cfg.Source.Dir, cfg.Source.Extensions)
}

// NewWithRoot creates a new Source rooted at dir. An empty extension list accepts every file.
func NewWithRoot(dir string, extensions []string) (*Source, error) {
	if dir == "" {
		return nil, errors.New("source directory is not configured")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source directory: %w", err)
	}

	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open source directory: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path %s is not a directory", root)
	}

	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = true
	}

	return &Source{
		root:       root,
		extensions: exts,
		logger:     slog.Default().With("component", "filesystem"),
	}, nil
}

// Files walks the directory tree and reads every matching file.
// Hidden files and directories are skipped.
func (s *Source) Files(ctx context.Context) ([]domain.File, error) {
	var files []domain.File

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			s.logger.WarnContext(ctx, "skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if path == s.root {
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() || !s.accepts(path) {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return nil
		}

		file, err := s.read(path, filepath.ToSlash(rel))
		if err != nil {
			s.logger.WarnContext(ctx, "skipping file", "path", rel, "error", err)
			return nil
		}
		files = append(files, *file)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", s.root, err)
	}

	s.logger.InfoContext(ctx, "read files from directory", "root", s.root, "count", len(files))
	return files, nil
}

// File reads a single file by its slash-separated key relative to the root.
// Keys that leave the root or name an excluded file are reported as not found.
// Symlinks and hidden paths are excluded, as they are when walking.
func (s *Source) File(ctx context.Context, key string) (*domain.File, error) {
	notFound := fmt.Errorf("%w: %s", ports.ErrFileNotFound, key)

	rel := filepath.FromSlash(key)
	if key == "" || !filepath.IsLocal(rel) {
		return nil, notFound
	}
	rel = filepath.Clean(rel)

	for _, segment := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(segment, ".") {
			return nil, notFound
		}
	}

	path := filepath.Join(s.root, rel)
	if !s.accepts(path) {
		return nil, notFound
	}

	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	// A symlinked parent directory may still lead outside the root
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, notFound
	}
	within, err := filepath.Rel(s.root, resolved)
	if err != nil || within != rel {
		return nil, notFound
	}

	return s.read(path, filepath.ToSlash(rel))
}

func (s *Source) accepts(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	return s.extensions[strings.ToLower(filepath.Ext(path))]
}

// read loads a file and builds its data record
func (s *Source) read(path, key string) (*domain.File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	meta, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return nil, err
	}

	data := make(map[string]any, len(meta)+6)
	for k, v := range meta {
		data[k] = v
	}

	data["path"] = key
	data["content"] = strings.TrimSpace(body)
	data["size"] = info.Size()
	data["updated"] = info.ModTime().UTC().Format(time.RFC3339)
	data["title"] = title(meta, body, key)

	return &domain.File{Key: key, Data: data}, nil
}
