package api

import (
	"net/http"
)

// RegisterRoutes registers all API routes with the provided mux.
// Health check is always public; reindex routes are wrapped with protect.
func (a *Adapter) RegisterRoutes(mux *http.ServeMux, protect func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /health", a.HandleHealth)

	if protect == nil {
		protect = func(next http.Handler) http.Handler { return next }
	}

	mux.Handle("POST /api/reindex", protect(http.HandlerFunc(a.HandleReindexAll)))
	mux.Handle("POST /api/reindex/file/{key...}", protect(http.HandlerFunc(a.HandleReindexFile)))

	a.logger.Info("API routes registered")
}
