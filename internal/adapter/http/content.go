package httpadapter

import (
	"net/http"

	"adcraft/internal/core/domain"
)

type contentResponse struct {
	Content *domain.Content `json:"content"`
}

// handleGenerateContent generates an image, video or ad copy. Provider
// failures come back as placeholder content with an error note, not as an
// error status.
func (h *Handler) handleGenerateContent(w http.ResponseWriter, r *http.Request) {
	var req domain.ContentRequest
	if err := decode(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.content.Generate(r.Context(), req)
	if err != nil {
		h.fail(w, r, err, "Failed to generate content")
		return
	}
	h.respondJSON(w, http.StatusOK, contentResponse{Content: c})
}
