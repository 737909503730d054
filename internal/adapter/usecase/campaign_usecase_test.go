package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/metrics"
	"adcraft/internal/core/port"
	"adcraft/internal/core/port/mocks"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newCampaignUseCase(repo port.CampaignRepository, synth *metrics.Synthesizer) *CampaignUseCase {
	u := NewCampaignUseCase(repo, synth, domain.StatusActive, nil)
	u.now = func() time.Time { return fixedNow }
	u.newID = func() string { return "camp_1" }
	u.rng = rand.New(rand.NewPCG(1, 1))
	return u
}

func TestCampaignCreate(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, metrics.NewSynthesizer(rand.New(rand.NewPCG(4, 2))))

	var stored domain.Campaign
	repo.EXPECT().
		Append(mock.Anything, mock.AnythingOfType("domain.Campaign")).
		Run(func(_ context.Context, c domain.Campaign) { stored = c }).
		Return(nil)

	c, err := u.Create(context.Background(), port.CampaignInput{
		Name:     "  Spring Launch ",
		Platform: domain.PlatformGoogle,
		Budget:   3000,
	})
	require.NoError(t, err)

	assert.Equal(t, "camp_1", c.ID)
	assert.Equal(t, "Spring Launch", c.Name)
	assert.Equal(t, domain.ObjectiveConversions, c.Objective)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, fixedNow, c.CreatedAt)
	assert.Equal(t, fixedNow, c.UpdatedAt)
	require.NotNil(t, c.Metrics)
	assert.LessOrEqual(t, c.Metrics.Spend, int64(3000))
	assert.Equal(t, *c, stored)
}

func TestCampaignCreate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   port.CampaignInput
	}{
		{"missing name", port.CampaignInput{Platform: domain.PlatformMeta, Budget: 10}},
		{"unknown platform", port.CampaignInput{Name: "x", Platform: "myspace", Budget: 10}},
		{"zero budget", port.CampaignInput{Name: "x", Platform: domain.PlatformMeta}},
		{"unknown status", port.CampaignInput{Name: "x", Platform: domain.PlatformMeta, Budget: 10, Status: "archived"}},
		{"unknown objective", port.CampaignInput{Name: "x", Platform: domain.PlatformMeta, Budget: 10, Objective: "fame"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			u := newCampaignUseCase(repo, nil)
			_, err := u.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, port.ErrInvalidCampaign)
		})
	}
}

func TestCampaignCreate_WithoutSynthesizer(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, nil)
	repo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil)

	c, err := u.Create(context.Background(), port.CampaignInput{
		Name: "x", Platform: domain.PlatformMeta, Budget: 10, Status: domain.StatusPaused,
	})
	require.NoError(t, err)
	assert.Nil(t, c.Metrics)
	assert.Equal(t, domain.StatusPaused, c.Status)
}

func TestCampaignUpdate_StampsTime(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, nil)

	budget := int64(900)
	repo.EXPECT().
		Update(mock.Anything, "camp_1", mock.MatchedBy(func(p domain.CampaignPatch) bool {
			return p.UpdatedAt.Equal(fixedNow) && p.Budget != nil && *p.Budget == 900
		})).
		Return(&domain.Campaign{ID: "camp_1", Budget: 900}, nil)

	c, err := u.Update(context.Background(), "camp_1", domain.CampaignPatch{Budget: &budget})
	require.NoError(t, err)
	assert.Equal(t, int64(900), c.Budget)
}

func TestCampaignUpdate_RejectsBadPatch(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, nil)

	status := domain.Status("archived")
	_, err := u.Update(context.Background(), "camp_1", domain.CampaignPatch{Status: &status})
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)

	empty := " "
	_, err = u.Update(context.Background(), "camp_1", domain.CampaignPatch{Name: &empty})
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)
}

func TestCampaignDelete_NotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, nil)
	repo.EXPECT().Delete(mock.Anything, "nope").Return(port.ErrCampaignNotFound)

	err := u.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestCampaignOverview_Range(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, nil)

	campaigns := []domain.Campaign{
		{ID: "new", Status: domain.StatusActive, CreatedAt: fixedNow.AddDate(0, 0, -2),
			Metrics: &domain.Metrics{Spend: 100, Revenue: 300, Impressions: 1000, Clicks: 10}},
		{ID: "old", Status: domain.StatusActive, CreatedAt: fixedNow.AddDate(0, -6, 0),
			Metrics: &domain.Metrics{Spend: 1000, Revenue: 1000}},
	}
	repo.EXPECT().List(mock.Anything, domain.CampaignFilter{}).Return(campaigns, nil)

	o, err := u.Overview(context.Background(), "7d")
	require.NoError(t, err)
	assert.Equal(t, 1, o.TotalCampaigns)
	assert.Equal(t, int64(100), o.TotalSpend)
	assert.InDelta(t, 200, o.AverageROI, 1e-9)

	all, err := u.Performance(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
}

func TestCampaignOverview_BadRange(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, nil)

	_, err := u.Overview(context.Background(), "5m")
	assert.ErrorIs(t, err, port.ErrInvalidArgument)
}

func TestCampaignPerformance(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, nil)
	repo.EXPECT().Get(mock.Anything, "camp_1").Return(&domain.Campaign{
		ID: "camp_1", Name: "A", Metrics: &domain.Metrics{Spend: 1000, Revenue: 3500},
	}, nil)

	p, err := u.CampaignPerformance(context.Background(), "camp_1")
	require.NoError(t, err)
	assert.InDelta(t, 250, p.ROI, 1e-9)
	assert.InDelta(t, 3.5, p.ROAS, 1e-9)
}

func TestCampaignOptimize(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, nil)
	repo.EXPECT().Get(mock.Anything, "camp_1").Return(&domain.Campaign{ID: "camp_1"}, nil)
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, port.ErrCampaignNotFound)

	rec, err := u.Optimize(context.Background(), "camp_1", domain.GoalReach)
	require.NoError(t, err)
	assert.Equal(t, "camp_1", rec.CampaignID)
	assert.Equal(t, domain.GoalReach, rec.Goal)
	assert.Len(t, rec.Recommendations, 4)

	_, err = u.Optimize(context.Background(), "camp_1", "virality")
	assert.ErrorIs(t, err, port.ErrInvalidArgument)

	_, err = u.Optimize(context.Background(), "missing", domain.GoalROI)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestCampaignList_PropagatesErrors(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	u := newCampaignUseCase(repo, nil)
	boom := errors.New("boom")
	repo.EXPECT().List(mock.Anything, domain.CampaignFilter{Platform: "meta"}).Return(nil, boom)

	_, err := u.List(context.Background(), domain.CampaignFilter{Platform: "meta"})
	assert.ErrorIs(t, err, boom)
}
