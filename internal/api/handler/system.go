package handler

import (
	"net/http"

	"github.com/taskapi/taskapi/internal/api/response"
	"github.com/taskapi/taskapi/internal/domain"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping() error
}

// SystemHandler handles system-level operations.
type SystemHandler struct {
	db Pinger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health handles GET /healthz.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(); err != nil {
		response.Error(w, domain.NewInternalError(err))
		return
	}

	response.OK(w, map[string]string{"status": "ok"})
}
