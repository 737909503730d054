package db

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adcraft/internal/adapter/filestore"
	"adcraft/internal/core/domain"
	"adcraft/internal/core/metrics"
	"adcraft/internal/core/port"
	"adcraft/internal/core/port/mocks"
)

func TestSeedSkipsExistingCampaigns(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	synth := metrics.NewSynthesizer(rand.New(rand.NewPCG(1, 1)))
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().Get(mock.Anything, "camp_demo_1").Return(&domain.Campaign{ID: "camp_demo_1"}, nil)
	for _, id := range []string{"camp_demo_2", "camp_demo_3", "camp_demo_4", "camp_demo_5"} {
		repo.EXPECT().Get(mock.Anything, id).Return(nil, port.ErrCampaignNotFound)
	}
	repo.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
			return c.Metrics != nil && c.TargetAudience != nil && c.CreatedAt.Before(now)
		})).
		Return(nil).
		Times(4)

	require.NoError(t, Seed(context.Background(), repo, synth, now))
}

func TestSeedListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := filestore.NewCampaignRepository(filepath.Join(t.TempDir(), "campaigns.json"))
	synth := metrics.NewSynthesizer(rand.New(rand.NewPCG(1, 1)))
	now := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Seed(ctx, repo, synth, now))
	require.NoError(t, Seed(ctx, repo, synth, now))

	got, err := repo.List(ctx, domain.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, got, 5)
	ids := make([]string, 0, len(got))
	for i, c := range got {
		ids = append(ids, c.ID)
		if i > 0 {
			assert.True(t, got[i-1].CreatedAt.After(c.CreatedAt))
		}
	}
	assert.Equal(t, []string{"camp_demo_1", "camp_demo_2", "camp_demo_3", "camp_demo_4", "camp_demo_5"}, ids)
}
