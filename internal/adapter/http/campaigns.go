package httpadapter

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

type campaignResponse struct {
	Campaign *domain.Campaign `json:"campaign"`
}

type campaignsResponse struct {
	Campaigns []domain.Campaign `json:"campaigns"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type optimizeRequest struct {
	Goal domain.OptimizationGoal `json:"goal"`
}

// handleListCampaigns lists stored campaigns, newest first. The optional
// platform and status query parameters narrow the listing; "all" matches
// everything.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	campaigns, err := h.campaigns.List(r.Context(), domain.CampaignFilter{
		Platform: q.Get("platform"),
		Status:   q.Get("status"),
	})
	if err != nil {
		h.fail(w, r, err, "Failed to fetch campaigns")
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	h.respondJSON(w, http.StatusOK, campaignsResponse{Campaigns: campaigns})
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignInput
	if err := decode(r, &in); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.campaigns.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, "Failed to create campaign")
		return
	}
	h.respondJSON(w, http.StatusCreated, campaignResponse{Campaign: c})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "Failed to fetch campaign")
		return
	}
	h.respondJSON(w, http.StatusOK, campaignResponse{Campaign: c})
}

// handleUpdateCampaign applies a partial update. Fields absent from the
// body keep their stored value.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var patch domain.CampaignPatch
	if err := decode(r, &patch); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.campaigns.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.fail(w, r, err, "Failed to update campaign")
		return
	}
	h.respondJSON(w, http.StatusOK, campaignResponse{Campaign: c})
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err, "Failed to delete campaign")
		return
	}
	h.respondJSON(w, http.StatusOK, messageResponse{Message: "Campaign deleted successfully"})
}

// handleOptimizeCampaign returns recommendations for the goal in the body.
// An empty body optimizes for ROI.
func (h *Handler) handleOptimizeCampaign(w http.ResponseWriter, r *http.Request) {
	req := optimizeRequest{Goal: domain.GoalROI}
	if err := decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Goal == "" {
		req.Goal = domain.GoalROI
	}
	rec, err := h.campaigns.Optimize(r.Context(), chi.URLParam(r, "id"), req.Goal)
	if err != nil {
		h.fail(w, r, err, "Failed to optimize campaign")
		return
	}
	h.respondJSON(w, http.StatusOK, rec)
}
