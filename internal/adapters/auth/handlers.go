package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Handler handles auth-related HTTP requests
type Handler struct {
	provider      Provider
	secureCookies bool
	logger        *slog.Logger
}

// NewHandler creates a new auth handler
func NewHandler(provider Provider, secureCookies bool) *Handler {
	return &Handler{
		provider:      provider,
		secureCookies: secureCookies,
		logger:        slog.Default().With("component", "auth"),
	}
}

// HandleLogin stores a fresh state and redirects to the OIDC provider
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	state, err := generateState()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to generate state", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.provider.AuthURL(state), http.StatusFound)
}

// HandleCallback handles the OIDC callback and returns the ID token to use as a bearer token
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil {
		h.logger.ErrorContext(ctx, "missing state cookie")
		http.Error(w, "Invalid state", http.StatusBadRequest)
		return
	}

	state := r.URL.Query().Get("state")
	if state != stateCookie.Value {
		h.logger.ErrorContext(ctx, "state mismatch")
		http.Error(w, "State mismatch", http.StatusBadRequest)
		return
	}

	h.clearCookie(w, stateCookieName)

	code := r.URL.Query().Get("code")
	if code == "" {
		h.logger.ErrorContext(ctx, "missing authorization code")
		http.Error(w, "Missing authorization code", http.StatusBadRequest)
		return
	}

	token, err := h.provider.Exchange(ctx, code)
	if err != nil {
		h.logger.ErrorContext(ctx, "OIDC exchange failed", "error", err)
		http.Error(w, "Authentication failed", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user authenticated", "email", token.Email)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(token); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode token response", "error", err)
	}
}

// clearCookie clears a cookie by setting MaxAge to -1
func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
