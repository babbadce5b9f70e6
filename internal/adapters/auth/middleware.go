package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// ContextKey for storing caller info in request context
type ContextKey string

const (
	// IdentityKey is the context key for the authenticated identity
	IdentityKey ContextKey = "identity"

	stateCookieName = "oauth_state"
	bearerPrefix    = "Bearer "
)

// GetIdentity retrieves the identity from the context, returns nil if not present
func GetIdentity(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(IdentityKey).(*Identity); ok {
		return identity
	}
	return nil
}

// Middleware protects routes with OIDC bearer tokens
type Middleware struct {
	provider Provider
	logger   *slog.Logger
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(provider Provider) *Middleware {
	return &Middleware{
		provider: provider,
		logger:   slog.Default().With("component", "auth"),
	}
}

// RequireAuth wraps a handler requiring a valid bearer ID token
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			writeUnauthorized(w, "missing bearer token")
			return
		}

		rawToken := strings.TrimSpace(header[len(bearerPrefix):])
		if rawToken == "" {
			writeUnauthorized(w, "missing bearer token")
			return
		}

		identity, err := m.provider.Verify(r.Context(), rawToken)
		if err != nil {
			m.logger.WarnContext(r.Context(), "rejected bearer token", "error", err)
			writeUnauthorized(w, "invalid bearer token")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeUnauthorized writes a 401 JSON response with a bearer challenge
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="search-indexer"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "error",
		"message": message,
	})
}

// generateState generates a cryptographically secure random state parameter
func generateState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
