package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adcraft/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the campaign, builder,
// analytics and content use cases as a JSON API on a chi.Router.
type Handler struct {
	campaigns port.CampaignUseCase
	builder   port.BuilderUseCase
	content   port.ContentUseCase
	logger    *slog.Logger
	router    chi.Router
	now       func() time.Time
}

// NewHandler creates a handler with all routes configured. Requests from
// corsOrigins are allowed cross-origin; "*" allows any origin.
func NewHandler(
	campaigns port.CampaignUseCase,
	builder port.BuilderUseCase,
	content port.ContentUseCase,
	corsOrigins []string,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		campaigns: campaigns,
		builder:   builder,
		content:   content,
		logger:    logger,
		now:       time.Now,
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Post("/ai-builder", h.handleBuilderTurn)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Post("/{id}/optimize", h.handleOptimizeCampaign)
		})
		r.Post("/conversations/{id}/messages", h.handleConversationMessage)
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/overview", h.handleAnalyticsOverview)
			r.Get("/campaigns", h.handleAnalyticsCampaigns)
			r.Get("/campaigns/{id}", h.handleAnalyticsCampaign)
		})
		r.Post("/content/generate", h.handleGenerateContent)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}
