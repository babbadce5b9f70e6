package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/javaBin/search-indexer/internal/config"
)

// MiddlewareFunc is a function that wraps a handler with middleware
type MiddlewareFunc func(http.Handler) http.Handler

// Adapter holds the auth adapter dependencies
type Adapter struct {
	handler    *Handler
	middleware MiddlewareFunc
}

// passthroughMiddleware returns the handler unchanged (no authentication)
func passthroughMiddleware(next http.Handler) http.Handler {
	return next
}

// New creates a new auth adapter.
// In development mode, returns an adapter with passthrough middleware.
// In production mode, OIDC must be configured or an error is returned.
func New(ctx context.Context) (*Adapter, error) {
	cfg := config.GetConfig(ctx)

	if cfg.Mode.IsDevelopment() {
		slog.Info("auth disabled (development mode)")
		return &Adapter{
			middleware: passthroughMiddleware,
		}, nil
	}

	if !cfg.OIDC.IsConfigured() {
		return nil, errors.New("production mode but OIDC not configured")
	}

	authenticator, err := NewAuthenticator(ctx, OIDCConfig{
		IssuerURL:    cfg.OIDC.IssuerURL,
		ClientID:     cfg.OIDC.ClientID,
		ClientSecret: cfg.OIDC.ClientSecret,
		RedirectURL:  cfg.OIDC.RedirectURL,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("OIDC authenticator initialized")

	return NewWithProvider(authenticator, true), nil
}

// NewWithProvider creates an auth adapter that requires bearer tokens from provider.
// This constructor is primarily intended for testing purposes.
func NewWithProvider(provider Provider, secureCookies bool) *Adapter {
	return &Adapter{
		handler:    NewHandler(provider, secureCookies),
		middleware: NewMiddleware(provider).RequireAuth,
	}
}

// RegisterRoutes registers auth routes (/auth/login, /auth/callback).
// Only registers routes if OIDC authentication is enabled.
func (a *Adapter) RegisterRoutes(mux *http.ServeMux) {
	if a.handler == nil {
		return
	}

	mux.HandleFunc("GET /auth/login", a.handler.HandleLogin)
	mux.HandleFunc("GET /auth/callback", a.handler.HandleCallback)

	slog.Info("auth routes registered")
}

// Middleware returns the authentication middleware.
// In development mode, this is a passthrough (no-op) middleware.
func (a *Adapter) Middleware() MiddlewareFunc {
	return a.middleware
}
