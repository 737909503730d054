package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcraft/internal/core/port"
)

type conversationRequest struct {
	Message string `json:"message"`
}

// handleBuilderTurn runs one stateless builder turn. The client echoes the
// draft and state it received on the previous turn.
func (h *Handler) handleBuilderTurn(w http.ResponseWriter, r *http.Request) {
	var req port.BuilderRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := h.builder.Turn(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "Failed to process message")
		return
	}
	h.respondJSON(w, http.StatusOK, resp)
}

// handleConversationMessage runs one turn of a server-side conversation.
// A turn arriving while another is in flight gets 409.
func (h *Handler) handleConversationMessage(w http.ResponseWriter, r *http.Request) {
	var req conversationRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp, err := h.builder.Converse(r.Context(), chi.URLParam(r, "id"), req.Message)
	if err != nil {
		h.fail(w, r, err, "Failed to process message")
		return
	}
	h.respondJSON(w, http.StatusOK, resp)
}
