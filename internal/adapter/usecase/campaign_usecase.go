package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"adcraft/internal/core/analytics"
	"adcraft/internal/core/builder"
	"adcraft/internal/core/domain"
	"adcraft/internal/core/metrics"
	"adcraft/internal/core/optimizer"
	"adcraft/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase on top of a
// CampaignRepository.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	logger *slog.Logger

	// synth attaches simulated metrics to new campaigns; nil disables it.
	synth  *metrics.Synthesizer
	status domain.Status

	now   func() time.Time
	newID func() string
	rng   *rand.Rand
}

// NewCampaignUseCase returns a use case storing campaigns in repo. New
// campaigns without an explicit status get status.
func NewCampaignUseCase(repo port.CampaignRepository, synth *metrics.Synthesizer, status domain.Status, logger *slog.Logger) *CampaignUseCase {
	if !status.Valid() {
		status = domain.StatusDraft
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{
		repo:   repo,
		logger: logger,
		synth:  synth,
		status: status,
		now:    time.Now,
		newID:  builder.NewCampaignID,
	}
}

// List returns the stored campaigns matching filter.
func (u *CampaignUseCase) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	return u.repo.List(ctx, filter)
}

// Get returns a single campaign by id.
func (u *CampaignUseCase) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.repo.Get(ctx, id)
}

// Create validates in, assigns an id and timestamps and stores the record.
func (u *CampaignUseCase) Create(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	now := u.now().UTC()
	c := domain.Campaign{
		ID:             u.newID(),
		Name:           strings.TrimSpace(in.Name),
		Platform:       in.Platform,
		Objective:      in.Objective,
		Budget:         in.Budget,
		DailyBudget:    in.DailyBudget,
		TargetAudience: in.TargetAudience,
		Schedule:       in.Schedule,
		Status:         in.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if c.Status == "" {
		c.Status = u.status
	}
	if c.Objective == "" {
		c.Objective = domain.ObjectiveConversions
	}
	if u.synth != nil {
		m := u.synth.Synthesize(c)
		c.Metrics = &m
	}
	if err := u.repo.Append(ctx, c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created", slog.String("id", c.ID), slog.String("platform", string(c.Platform)))
	return &c, nil
}

// Update validates patch, stamps the update time and applies it.
func (u *CampaignUseCase) Update(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	if patch.Platform != nil && !patch.Platform.Valid() {
		return nil, fmt.Errorf("%w: unknown platform %q", port.ErrInvalidCampaign, *patch.Platform)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", port.ErrInvalidCampaign, *patch.Status)
	}
	if patch.Budget != nil && *patch.Budget < 0 {
		return nil, fmt.Errorf("%w: budget must not be negative", port.ErrInvalidCampaign)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", port.ErrInvalidCampaign)
	}
	patch.UpdatedAt = u.now().UTC()
	return u.repo.Update(ctx, id, patch)
}

// Delete removes a campaign by id.
func (u *CampaignUseCase) Delete(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.logger.Info("campaign deleted", slog.String("id", id))
	return nil
}

// Overview summarizes the campaigns created within rng.
func (u *CampaignUseCase) Overview(ctx context.Context, rng string) (*domain.Overview, error) {
	campaigns, err := u.window(ctx, rng)
	if err != nil {
		return nil, err
	}
	o := analytics.Summarize(campaigns)
	return &o, nil
}

// Performance ranks the campaigns created within rng by ROI.
func (u *CampaignUseCase) Performance(ctx context.Context, rng string) ([]domain.CampaignPerformance, error) {
	campaigns, err := u.window(ctx, rng)
	if err != nil {
		return nil, err
	}
	return analytics.Rank(campaigns), nil
}

// CampaignPerformance returns the derived KPIs of one campaign.
func (u *CampaignUseCase) CampaignPerformance(ctx context.Context, id string) (*domain.CampaignPerformance, error) {
	c, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p := analytics.Of(*c)
	return &p, nil
}

// Optimize returns recommendations for an existing campaign.
func (u *CampaignUseCase) Optimize(ctx context.Context, id string, goal domain.OptimizationGoal) (*domain.Recommendation, error) {
	if _, err := u.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	rec, err := optimizer.Recommend(goal, u.rng)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidArgument, err)
	}
	rec.CampaignID = id
	return &rec, nil
}

func (u *CampaignUseCase) window(ctx context.Context, rng string) ([]domain.Campaign, error) {
	from, err := analytics.Window(rng, u.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidArgument, err)
	}
	campaigns, err := u.repo.List(ctx, domain.CampaignFilter{})
	if err != nil {
		return nil, err
	}
	return analytics.Since(campaigns, from), nil
}

func validate(in port.CampaignInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", port.ErrInvalidCampaign)
	case !in.Platform.Valid():
		return fmt.Errorf("%w: unknown platform %q", port.ErrInvalidCampaign, in.Platform)
	case in.Budget <= 0:
		return fmt.Errorf("%w: budget must be positive", port.ErrInvalidCampaign)
	case in.Status != "" && !in.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", port.ErrInvalidCampaign, in.Status)
	}
	switch in.Objective {
	case "", domain.ObjectiveConversions, domain.ObjectiveLeads, domain.ObjectiveAwareness, domain.ObjectiveTraffic:
		return nil
	}
	return fmt.Errorf("%w: unknown objective %q", port.ErrInvalidCampaign, in.Objective)
}
