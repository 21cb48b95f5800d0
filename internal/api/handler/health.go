package handler

import (
	"net/http"

	"github.com/floopybird/backend/internal/api/response"
	"github.com/floopybird/backend/internal/storage"
)

// HealthHandler reports liveness based on store connectivity
type HealthHandler struct {
	storage storage.Storage
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(storage storage.Storage) *HealthHandler {
	return &HealthHandler{
		storage: storage,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ping(r.Context()); err != nil {
		response.JSON(w, http.StatusInternalServerError, response.HealthResponse{
			Status: "DOWN",
			Error:  err.Error(),
		})
		return
	}

	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "UP"})
}
