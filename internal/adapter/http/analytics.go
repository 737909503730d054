package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adcraft/internal/core/domain"
)

type performanceResponse struct {
	Campaigns []domain.CampaignPerformance `json:"campaigns"`
}

type campaignAnalyticsResponse struct {
	CampaignID string             `json:"campaignId"`
	Name       string             `json:"name"`
	Platform   domain.Platform    `json:"platform"`
	Metrics    domain.Performance `json:"metrics"`
}

// handleAnalyticsOverview aggregates campaigns created within the optional
// range query parameter (7d, 30d, 90d, 1y).
func (h *Handler) handleAnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	o, err := h.campaigns.Overview(r.Context(), r.URL.Query().Get("range"))
	if err != nil {
		h.fail(w, r, err, "Failed to fetch overview")
		return
	}
	h.respondJSON(w, http.StatusOK, o)
}

func (h *Handler) handleAnalyticsCampaigns(w http.ResponseWriter, r *http.Request) {
	rows, err := h.campaigns.Performance(r.Context(), r.URL.Query().Get("range"))
	if err != nil {
		h.fail(w, r, err, "Failed to fetch campaigns analytics")
		return
	}
	if rows == nil {
		rows = []domain.CampaignPerformance{}
	}
	h.respondJSON(w, http.StatusOK, performanceResponse{Campaigns: rows})
}

func (h *Handler) handleAnalyticsCampaign(w http.ResponseWriter, r *http.Request) {
	p, err := h.campaigns.CampaignPerformance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "Failed to fetch analytics")
		return
	}
	h.respondJSON(w, http.StatusOK, campaignAnalyticsResponse{
		CampaignID: p.ID,
		Name:       p.Name,
		Platform:   p.Platform,
		Metrics:    p.Performance,
	})
}
