package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"adcraft/internal/core/port"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, errorResponse{Error: msg})
}

// fail maps a use case error to a status code. Unexpected errors are
// logged and reported with the generic message msg.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound), errors.Is(err, port.ErrSessionNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, port.ErrInvalidCampaign),
		errors.Is(err, port.ErrInvalidArgument),
		errors.Is(err, port.ErrInvalidContentKind):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrConversationBusy):
		h.respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(msg,
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.respondError(w, http.StatusInternalServerError, msg)
	}
}

// decode reads a JSON body into v. Unknown fields are ignored.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
