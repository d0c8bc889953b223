package handler

import (
	"encoding/json"
	"net/http"

	"github.com/spiderxog/hub/internal/api/middleware"
	"github.com/spiderxog/hub/internal/api/request"
	"github.com/spiderxog/hub/internal/api/response"
	"github.com/spiderxog/hub/internal/services/chat"
)

// ChatHandler handles chat feed endpoints
type ChatHandler struct {
	chat *chat.Log
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatLog *chat.Log) *ChatHandler {
	return &ChatHandler{
		chat: chatLog,
	}
}

// List handles GET /api/v1/chat
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chat.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ChatMessagesFromModel(messages))
}

// Send handles POST /api/v1/chat
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	sess := middleware.MustGetSession(r.Context())

	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	msg, err := h.chat.Append(r.Context(), sess, req.Text)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ChatMessageFromModel(msg))
}
