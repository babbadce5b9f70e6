package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/javaBin/search-indexer/internal/ports"
)

// ReindexResponse represents the response for reindex operations
type ReindexResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleReindexAll handles the full reindex endpoint
func (a *Adapter) HandleReindexAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := a.reindexer.ReindexAll(ctx); err != nil {
		a.logger.ErrorContext(ctx, "failed to reindex all files", "error", err)
		a.writeErrorResponse(w, http.StatusInternalServerError, "failed to reindex all files", err)
		return
	}

	a.writeSuccessResponse(w, ReindexResponse{
		Status:  "success",
		Message: "successfully reindexed all files",
	})
}

// HandleReindexFile handles the reindex endpoint for a single file.
// The key may contain slashes.
func (a *Adapter) HandleReindexFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := r.PathValue("key")
	if key == "" {
		a.writeErrorResponse(w, http.StatusBadRequest, "file key is required", nil)
		return
	}

	if err := a.reindexer.ReindexFile(ctx, key); err != nil {
		if errors.Is(err, ports.ErrFileNotFound) {
			a.writeErrorResponse(w, http.StatusNotFound, "file not found: "+key, nil)
			return
		}
		a.logger.ErrorContext(ctx, "failed to reindex file", "key", key, "error", err)
		a.writeErrorResponse(w, http.StatusInternalServerError, "failed to reindex file", err)
		return
	}

	a.writeSuccessResponse(w, ReindexResponse{
		Status:  "success",
		Message: "successfully reindexed file: " + key,
	})
}

// writeSuccessResponse writes a successful JSON response
func (a *Adapter) writeSuccessResponse(w http.ResponseWriter, response ReindexResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		a.logger.Error("failed to encode success response", "error", err)
	}
}

// writeErrorResponse writes an error JSON response
func (a *Adapter) writeErrorResponse(w http.ResponseWriter, status int, message string, err error) {
	response := ReindexResponse{
		Status:  "error",
		Message: message,
	}

	if err != nil {
		response.Message = message + ": " + err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		a.logger.Error("failed to encode error response", "error", err)
	}
}
