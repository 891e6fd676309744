package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/emberhall/mystery-engine/internal/services"
)

type HealthResponse struct {
	Message  string `json:"message"`
	Status   string `json:"status"`
	MockMode bool   `json:"mock_mode"`
}

// HealthHandler reports service status and whether the gateway is
// running without the live model capability.
type HealthHandler struct {
	store    services.Store
	mockMode bool
	logger   *slog.Logger
}

func NewHealthHandler(store services.Store, mockMode bool, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:    store,
		mockMode: mockMode,
		logger:   logger,
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Registered on the "/" pattern, which is a catch-all; anything
	// but the root itself is an unknown route.
	if r.URL.Path != "/" {
		writeError(w, h.logger, http.StatusNotFound, "Not found.")
		return
	}

	h.logger.Debug("Health check requested", "remote_addr", r.RemoteAddr)

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "running"
	statusCode := http.StatusOK
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("Store health check failed", "error", err)
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, h.logger, statusCode, HealthResponse{
		Message:  "Hogwarts Mystery Backend API",
		Status:   status,
		MockMode: h.mockMode,
	})
}
