package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/metrics"
	"adcraft/internal/core/port"
)

var demoCampaigns = []struct {
	name      string
	platform  domain.Platform
	objective domain.Objective
	budget    int64
	status    domain.Status
	audience  domain.Audience
}{
	{"Summer Sale 2024", domain.PlatformMeta, domain.ObjectiveConversions, 1500, domain.StatusActive,
		domain.Audience{AgeRange: [2]int{25, 45}, Locations: []string{"United States"}, Interests: []string{"fashion"}}},
	{"Brand Awareness Q3", domain.PlatformGoogle, domain.ObjectiveAwareness, 3000, domain.StatusActive,
		domain.Audience{AgeRange: [2]int{18, 65}, Locations: []string{"United States", "Canada"}, Interests: []string{"general"}}},
	{"Retargeting - Cart Abandoners", domain.PlatformTikTok, domain.ObjectiveConversions, 1000, domain.StatusPaused,
		domain.Audience{AgeRange: [2]int{18, 34}, Locations: []string{"United States"}, Interests: []string{"fashion", "gaming"}}},
	{"LinkedIn B2B Leads", domain.PlatformLinkedIn, domain.ObjectiveLeads, 2000, domain.StatusActive,
		domain.Audience{AgeRange: [2]int{28, 55}, Locations: []string{"United Kingdom"}, Interests: []string{"business", "finance"}}},
	{"Instagram Stories Promo", domain.PlatformMeta, domain.ObjectiveTraffic, 1200, domain.StatusCompleted,
		domain.Audience{AgeRange: [2]int{18, 30}, Locations: []string{"Australia"}, Interests: []string{"travel", "food"}}},
}

// Seed stores the demo campaigns with synthesized metrics. Campaigns that
// already exist are left alone, so seeding twice is harmless.
func Seed(ctx context.Context, repo port.CampaignRepository, synth *metrics.Synthesizer, now time.Time) error {
	for i, demo := range demoCampaigns {
		id := fmt.Sprintf("camp_demo_%d", i+1)
		_, err := repo.Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, port.ErrCampaignNotFound) {
			return err
		}

		audience := demo.audience
		created := now.AddDate(0, 0, -7*(i+1)).UTC()
		c := domain.Campaign{
			ID:             id,
			Name:           demo.name,
			Platform:       demo.platform,
			Objective:      demo.objective,
			Budget:         demo.budget,
			DailyBudget:    demo.budget / 30,
			TargetAudience: &audience,
			Status:         demo.status,
			CreatedAt:      created,
			UpdatedAt:      created,
		}
		m := synth.Synthesize(c)
		c.Metrics = &m
		if err = repo.Append(ctx, c); err != nil {
			return fmt.Errorf("seed %s: %w", id, err)
		}
	}
	return nil
}
