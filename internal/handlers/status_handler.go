package handlers

import (
	"net/http"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/common"
)

// StatusHandler handles HTTP requests for application status
type StatusHandler struct {
	dispatcher MethodDispatcher
	startedAt  time.Time
	logger     arbor.ILogger
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(dispatcher MethodDispatcher, logger arbor.ILogger) *StatusHandler {
	return &StatusHandler{
		dispatcher: dispatcher,
		startedAt:  time.Now(),
		logger:     logger,
	}
}

// GetStatusHandler handles GET /api/status
func (h *StatusHandler) GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	status := map[string]interface{}{
		"initialized": h.dispatcher.IsInitialized(),
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
	}
	for k, v := range common.VersionInfo() {
		status[k] = v
	}
	WriteJSON(w, http.StatusOK, status)
}

// HealthHandler handles GET /api/health
func (h *StatusHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
