package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-pkgz/repeater"

	"github.com/javaBin/search-indexer/internal/config"
	"github.com/javaBin/search-indexer/internal/domain"
	"github.com/javaBin/search-indexer/internal/ports"
)

// Client implements ports.FileSource for a remote JSON file feed
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	attempts   int
	retryDelay time.Duration
	logger     *slog.Logger
}

// errPermanent stops retries; the underlying error is reported instead
var errPermanent = errors.New("permanent feed error")

// statusError is returned for non-200 responses
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d, body: %s", e.code, e.body)
}

// New creates a new feed Client, retrieving configuration from context.
// If username and password are configured, Basic Auth will be used for all requests.
func New(ctx context.Context) (*Client, error) {
	cfg := config.GetConfig(ctx)
	if cfg.Source.FeedURL == "" {
		return nil, errors.New("feed URL is not configured")
	}
	return NewWithHTTPClient(
		cfg.Source.FeedURL,
		cfg.Source.FeedUser,
		cfg.Source.FeedPassword,
		&http.Client{Timeout: 30 * time.Second},
	), nil
}

// NewWithHTTPClient creates a new feed Client with a custom HTTP client.
// This constructor is primarily intended for testing purposes.
func NewWithHTTPClient(baseURL, username, password string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
		httpClient: httpClient,
		attempts:   3,
		retryDelay: 500 * time.Millisecond,
		logger:     slog.Default().With("component", "feed"),
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx responses
func (c *Client) doRequest(ctx context.Context, method, path string) ([]byte, error) {
	var body []byte
	var lastErr error

	err := repeater.NewDefault(c.attempts, c.retryDelay).Do(ctx, func() error {
		b, err := c.fetch(ctx, method, path)
		if err == nil {
			body = b
			return nil
		}
		lastErr = err

		var statusErr *statusError
		if ctx.Err() != nil || (errors.As(err, &statusErr) && statusErr.code < http.StatusInternalServerError) {
			return errPermanent
		}
		return err
	}, errPermanent)
	if err != nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, err
	}

	return body, nil
}

// fetch performs a single HTTP request with optional Basic Auth
func (c *Client) fetch(ctx context.Context, method, path string) ([]byte, error) {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.username != "" && c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "making HTTP request", "method", method, "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "HTTP request failed",
			"status", resp.StatusCode,
			"url", endpoint,
			"body", string(body),
		)
		return nil, &statusError{code: resp.StatusCode, body: string(body)}
	}

	return body, nil
}

// Files retrieves every file listed by the feed
func (c *Client) Files(ctx context.Context) ([]domain.File, error) {
	c.logger.InfoContext(ctx, "fetching files from feed")

	body, err := c.doRequest(ctx, http.MethodGet, "/files")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch files: %w", err)
	}

	var response FilesAPIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		// Try to parse as direct array
		var files []FileResponse
		if err := json.Unmarshal(body, &files); err != nil {
			c.logger.ErrorContext(ctx, "failed to unmarshal files response",
				"error", err,
				"body", string(body),
			)
			return nil, fmt.Errorf("failed to unmarshal files: %w", err)
		}
		response.Files = files
	}

	files := make([]domain.File, 0, len(response.Files))
	for _, f := range response.Files {
		if f.Key == "" {
			c.logger.WarnContext(ctx, "skipping feed entry without key")
			continue
		}
		files = append(files, f.toDomain())
	}

	c.logger.InfoContext(ctx, "fetched files from feed", "count", len(files))
	return files, nil
}

// File retrieves a single file by its key.
// It returns ports.ErrFileNotFound when the feed answers 404.
func (c *Client) File(ctx context.Context, key string) (*domain.File, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/files/"+escapeKey(key))
	if err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ports.ErrFileNotFound, key)
		}
		return nil, fmt.Errorf("failed to fetch file %s: %w", key, err)
	}

	var response FileResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal file %s: %w", key, err)
	}
	if response.Key == "" {
		response.Key = key
	}

	file := response.toDomain()
	return &file, nil
}

// escapeKey escapes each path segment of a key, keeping the separators
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
