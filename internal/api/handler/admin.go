package handler

import (
	"net/http"

	"github.com/spiderxog/hub/internal/api/response"
	"github.com/spiderxog/hub/internal/services/dashboard"
)

// AdminHandler handles the admin dashboard endpoints
type AdminHandler struct {
	dashboard *dashboard.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(dashboardService *dashboard.Service) *AdminHandler {
	return &AdminHandler{
		dashboard: dashboardService,
	}
}

// Overview handles GET /api/v1/admin/overview
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboard.Overview(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, overview)
}

// Members handles GET /api/v1/admin/members
func (h *AdminHandler) Members(w http.ResponseWriter, r *http.Request) {
	members, err := h.dashboard.Members(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, members)
}
