package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/spiderxog/hub/internal/api/middleware"
	"github.com/spiderxog/hub/internal/api/request"
	"github.com/spiderxog/hub/internal/api/response"
	"github.com/spiderxog/hub/internal/model"
	"github.com/spiderxog/hub/internal/services/ledger"
)

// AnnouncementHandler handles announcement board endpoints
type AnnouncementHandler struct {
	ledger *ledger.Service
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(ledgerService *ledger.Service) *AnnouncementHandler {
	return &AnnouncementHandler{
		ledger: ledgerService,
	}
}

// List handles GET /api/v1/announcements
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	announcements, err := h.ledger.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnnouncementsFromModel(announcements, string(sess.ID)))
}

// Create handles POST /api/v1/announcements (admin only)
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var req request.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	ann, err := h.ledger.Create(r.Context(), sess.DisplayName, req.Title, req.Body)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AnnouncementFromModel(ann, string(sess.ID)))
}

// Delete handles DELETE /api/v1/announcements/{id} (admin only)
func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.ledger.Delete(r.Context(), model.AnnouncementID(id)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Vote handles POST /api/v1/announcements/{id}/vote
func (h *AnnouncementHandler) Vote(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())
	id := mux.Vars(r)["id"]

	var req request.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var direction model.VoteDirection
	switch req.Direction {
	case string(model.VoteUp):
		direction = model.VoteUp
	case string(model.VoteDown):
		direction = model.VoteDown
	default:
		WriteError(w, NewInvalidRequestError("direction must be \"up\" or \"down\""))
		return
	}

	ann, err := h.ledger.Vote(r.Context(), model.AnnouncementID(id), string(sess.ID), direction)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnnouncementFromModel(ann, string(sess.ID)))
}
