package port

import (
	"context"

	"adcraft/internal/core/domain"
)

// CampaignUseCase defines the campaign and analytics operations exposed to
// the HTTP and MCP adapters.
type CampaignUseCase interface {
	List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// Create assigns an id and timestamps, validates the record and stores
	// it. Metrics are synthesized when the service is configured to.
	Create(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	Update(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error)
	Delete(ctx context.Context, id string) error

	// Overview aggregates every campaign created within rng ("7d", "30d",
	// "90d", "1y" or empty for all time).
	Overview(ctx context.Context, rng string) (*domain.Overview, error)
	// Performance lists per-campaign KPIs, best ROI first.
	Performance(ctx context.Context, rng string) ([]domain.CampaignPerformance, error)
	CampaignPerformance(ctx context.Context, id string) (*domain.CampaignPerformance, error)
	Optimize(ctx context.Context, id string, goal domain.OptimizationGoal) (*domain.Recommendation, error)
}

// CampaignInput is a campaign submitted directly rather than built through
// a conversation.
type CampaignInput struct {
	Name           string           `json:"name"`
	Platform       domain.Platform  `json:"platform"`
	Objective      domain.Objective `json:"objective"`
	Budget         int64            `json:"budget"`
	DailyBudget    int64            `json:"dailyBudget,omitempty"`
	TargetAudience *domain.Audience `json:"targetAudience,omitempty"`
	Schedule       *domain.Schedule `json:"schedule,omitempty"`
	Status         domain.Status    `json:"status,omitempty"`
}

// BuilderUseCase runs builder conversations.
type BuilderUseCase interface {
	// Turn advances a conversation whose state is held by the caller.
	Turn(ctx context.Context, req BuilderRequest) (*BuilderResponse, error)
	// Converse advances a conversation whose state is kept server side.
	// Concurrent turns for one conversation fail with ErrConversationBusy.
	Converse(ctx context.Context, conversationID, message string) (*BuilderResponse, error)
}

// BuilderRequest is one stateless builder turn.
type BuilderRequest struct {
	Message string        `json:"userMessage"`
	History []domain.Turn `json:"conversationHistory,omitempty"`
	Draft   domain.Draft  `json:"currentData"`
	Phase   domain.Phase  `json:"state"`
}

// BuilderResponse is the result of a builder turn. Campaign is set on the
// turn that created it.
type BuilderResponse struct {
	Message  string           `json:"message"`
	Draft    domain.Draft     `json:"campaignData"`
	Phase    domain.Phase     `json:"state"`
	Campaign *domain.Campaign `json:"campaign,omitempty"`
}

// ContentUseCase generates ad creatives.
type ContentUseCase interface {
	// Generate returns the requested creative. Provider failures degrade
	// to a placeholder result rather than an error; only invalid requests
	// fail.
	Generate(ctx context.Context, req domain.ContentRequest) (*domain.Content, error)
}
