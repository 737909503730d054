package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignPatchApply(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	base := Campaign{
		ID:             "camp_1",
		Name:           "Original",
		Platform:       PlatformMeta,
		Objective:      ObjectiveLeads,
		Budget:         1000,
		DailyBudget:    33,
		TargetAudience: &Audience{AgeRange: [2]int{25, 45}, Locations: []string{"Canada"}},
		Status:         StatusDraft,
		CreatedAt:      created,
		UpdatedAt:      created,
	}

	budget := int64(2000)
	status := StatusActive
	updated := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	got := CampaignPatch{Budget: &budget, Status: &status, UpdatedAt: updated}.Apply(base)

	assert.Equal(t, int64(2000), got.Budget)
	assert.Equal(t, StatusActive, got.Status)
	assert.Equal(t, updated, got.UpdatedAt)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, "Original", got.Name)
	assert.Equal(t, PlatformMeta, got.Platform)
	assert.Equal(t, int64(33), got.DailyBudget)
	assert.Same(t, base.TargetAudience, got.TargetAudience)

	// The original is untouched.
	assert.Equal(t, int64(1000), base.Budget)
}

func TestCampaignPatchApply_CopiesAudience(t *testing.T) {
	audience := Audience{AgeRange: [2]int{18, 30}, Locations: []string{"Japan"}}
	got := CampaignPatch{TargetAudience: &audience}.Apply(Campaign{})

	require.NotNil(t, got.TargetAudience)
	audience.Locations[0] = "changed"
	assert.Equal(t, []string{"Japan"}, got.TargetAudience.Locations)
}

func TestCampaignPatchApply_ZeroTimeKeepsUpdatedAt(t *testing.T) {
	stamp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	got := CampaignPatch{}.Apply(Campaign{UpdatedAt: stamp})
	assert.Equal(t, stamp, got.UpdatedAt)
}

func TestCampaignFilterMatch(t *testing.T) {
	c := Campaign{Platform: PlatformGoogle, Status: StatusPaused}

	tests := []struct {
		filter CampaignFilter
		want   bool
	}{
		{CampaignFilter{}, true},
		{CampaignFilter{Platform: "all", Status: "all"}, true},
		{CampaignFilter{Platform: "google"}, true},
		{CampaignFilter{Platform: "meta"}, false},
		{CampaignFilter{Status: "paused"}, true},
		{CampaignFilter{Platform: "google", Status: "active"}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.filter.Match(c), "%+v", tt.filter)
	}
}

func TestDraftCloneIsDeep(t *testing.T) {
	budget := int64(500)
	name := "x"
	d := Draft{
		Budget:         &budget,
		Name:           &name,
		TargetAudience: &Audience{Interests: []string{"tech"}},
	}
	c := d.Clone()
	*c.Budget = 1
	*c.Name = "y"
	c.TargetAudience.Interests[0] = "art"

	assert.Equal(t, int64(500), *d.Budget)
	assert.Equal(t, "x", *d.Name)
	assert.Equal(t, []string{"tech"}, d.TargetAudience.Interests)
}

func TestPhaseRank(t *testing.T) {
	assert.Less(t, PhaseInitial.Rank(), PhaseGathering.Rank())
	assert.Less(t, PhaseGathering.Rank(), PhaseConfirming.Rank())
	assert.Less(t, PhaseConfirming.Rank(), PhaseReady.Rank())
	assert.Equal(t, 0, Phase("bogus").Rank())
	assert.False(t, Phase("bogus").Valid())
}
