package mcpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
	"adcraft/internal/core/port/mocks"
)

type fixture struct {
	campaigns *mocks.MockCampaignUseCase
	content   *mocks.MockContentUseCase
	session   *mcp.ClientSession
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	f := &fixture{
		campaigns: mocks.NewMockCampaignUseCase(t),
		content:   mocks.NewMockContentUseCase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewServer(f.campaigns, f.content, domain.StatusActive, "test", logger)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := srv.Connect(ctx, serverTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	f.session, err = client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.session.Close() })
	return f
}

func (f *fixture) call(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := f.session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func decodeStructured[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	require.False(t, res.IsError, "tool returned an error: %+v", res.Content)
	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestListTools(t *testing.T) {
	f := newFixture(t)
	res, err := f.session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"create_ad_campaign", "generate_content", "get_campaign_roi", "optimize_campaign", "list_campaigns",
	}, names)
}

func TestCreateAdCampaign_WithContent(t *testing.T) {
	f := newFixture(t)
	created := &domain.Campaign{
		ID:        "camp_1",
		Name:      "Autumn Launch",
		Platform:  domain.PlatformMeta,
		Objective: domain.ObjectiveAwareness,
		Status:    domain.StatusActive,
		Budget:    2500,
		TargetAudience: &domain.Audience{
			AgeRange: [2]int{18, 35}, Locations: []string{"Canada"}, Interests: []string{"fashion"},
		},
		CreatedAt: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	f.campaigns.EXPECT().
		Create(mock.Anything, port.CampaignInput{
			Name:      "Autumn Launch",
			Platform:  domain.PlatformMeta,
			Objective: domain.ObjectiveAwareness,
			Budget:    2500,
			TargetAudience: &domain.Audience{
				AgeRange: [2]int{18, 35}, Locations: []string{"Canada"}, Interests: []string{"fashion"},
			},
			Status: domain.StatusActive,
		}).
		Return(created, nil)
	f.content.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(r domain.ContentRequest) bool { return r.Kind == domain.ContentImage })).
		Return(&domain.Content{Kind: domain.ContentImage, URL: "https://cdn.example/a.png"}, nil)
	f.content.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(r domain.ContentRequest) bool { return r.Kind == domain.ContentCopy })).
		Return(&domain.Content{Kind: domain.ContentCopy, Headline: "✨ Autumn"}, nil)

	res := f.call(t, "create_ad_campaign", map[string]any{
		"name":      "Autumn Launch",
		"platform":  "meta",
		"objective": "brand_awareness",
		"budget":    2500,
		"target_audience": map[string]any{
			"age_range": []int{18, 35}, "locations": []string{"Canada"}, "interests": []string{"fashion"},
		},
		"generate_content": map[string]any{"image": true, "copy": true},
	})

	out := decodeStructured[CreateCampaignResult](t, res)
	assert.True(t, out.Success)
	assert.Equal(t, "camp_1", out.Campaign.ID)
	assert.Equal(t, "2026-09-01T00:00:00Z", out.Campaign.CreatedAt)
	require.NotNil(t, out.GeneratedContent.Image)
	assert.Equal(t, "https://cdn.example/a.png", out.GeneratedContent.Image.URL)
	require.NotNil(t, out.GeneratedContent.Copy)
	assert.Nil(t, out.GeneratedContent.Video)
	assert.Contains(t, out.Message, "Autumn Launch")
}

func TestCreateAdCampaign_InvalidCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, port.ErrInvalidCampaign)

	res, err := f.session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "create_ad_campaign",
		Arguments: map[string]any{
			"name": "x", "platform": "myspace", "objective": "sales", "budget": 10,
			"target_audience": map[string]any{},
		},
	})
	assert.True(t, err != nil || res.IsError)
}

func TestGenerateContent(t *testing.T) {
	f := newFixture(t)
	f.content.EXPECT().
		Generate(mock.Anything, domain.ContentRequest{
			Kind: domain.ContentImage, Prompt: "sneakers", Dimensions: &domain.Dimensions{Width: 800, Height: 800},
		}).
		Return(&domain.Content{Kind: domain.ContentImage, URL: "https://cdn.example/s.png"}, nil)

	res := f.call(t, "generate_content", map[string]any{
		"type": "image", "prompt": "sneakers", "dimensions": map[string]any{"width": 800, "height": 800},
	})
	out := decodeStructured[GenerateContentResult](t, res)
	assert.Equal(t, "https://cdn.example/s.png", out.Content.URL)
}

func TestGetCampaignROI(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().CampaignPerformance(mock.Anything, "camp_1").Return(&domain.CampaignPerformance{
		ID: "camp_1", Name: "A",
		Performance: domain.Performance{
			Metrics: domain.Metrics{Spend: 1000, Revenue: 3500, Impressions: 50000, Clicks: 1250, Conversions: 75},
			ROI:     250, ROAS: 3.5, CTR: 2.5,
		},
	}, nil)

	res := f.call(t, "get_campaign_roi", map[string]any{"campaign_id": "camp_1"})
	out := decodeStructured[CampaignROIResult](t, res)
	assert.Equal(t, int64(1000), out.ROI.Spend)
	assert.InDelta(t, 250, out.ROI.ROI, 1e-9)
	assert.InDelta(t, 3.5, out.ROI.ROAS, 1e-9)
}

func TestOptimizeCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Optimize(mock.Anything, "camp_1", domain.GoalEngagement).Return(&domain.Recommendation{
		CampaignID: "camp_1", Goal: domain.GoalEngagement, Recommendations: []string{"Refresh creative assets weekly"},
		EstimatedImprovement: 30,
	}, nil)
	f.campaigns.EXPECT().Optimize(mock.Anything, "missing", domain.GoalROI).Return(nil, port.ErrCampaignNotFound)

	res := f.call(t, "optimize_campaign", map[string]any{"campaign_id": "camp_1", "optimization_goal": "engagement"})
	out := decodeStructured[OptimizeCampaignResult](t, res)
	assert.Equal(t, 30, out.Optimization.EstimatedImprovement)

	res, err := f.session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "optimize_campaign",
		Arguments: map[string]any{"campaign_id": "missing", "optimization_goal": "roi"},
	})
	assert.True(t, err != nil || res.IsError)
}

func TestListCampaigns(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().
		List(mock.Anything, domain.CampaignFilter{Platform: "google", Status: "all"}).
		Return([]domain.Campaign{{ID: "camp_2", Platform: domain.PlatformGoogle}}, nil)

	res := f.call(t, "list_campaigns", map[string]any{"platform": "google", "status": "all"})
	out := decodeStructured[ListCampaignsResult](t, res)
	require.Len(t, out.Campaigns, 1)
	assert.Equal(t, "camp_2", out.Campaigns[0].ID)
}

func TestResources(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().
		List(mock.Anything, domain.CampaignFilter{Status: "active"}).
		Return([]domain.Campaign{{ID: "camp_1", Status: domain.StatusActive}}, nil)
	f.campaigns.EXPECT().Overview(mock.Anything, "").Return(&domain.Overview{TotalSpend: 42, ActiveCampaigns: 1}, nil)

	res, err := f.session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: activeCampaignsURI})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	var active []CampaignSummary
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &active))
	require.Len(t, active, 1)
	assert.Equal(t, "camp_1", active[0].ID)

	res, err = f.session.ReadResource(context.Background(), &mcp.ReadResourceParams{URI: analyticsOverviewURI})
	require.NoError(t, err)
	var o domain.Overview
	require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &o))
	assert.Equal(t, int64(42), o.TotalSpend)
}

func TestObjectiveOf(t *testing.T) {
	assert.Equal(t, domain.ObjectiveLeads, objectiveOf("LEADS"))
	assert.Equal(t, domain.ObjectiveAwareness, objectiveOf("brand_awareness"))
	assert.Equal(t, domain.ObjectiveTraffic, objectiveOf("website visits"))
	assert.Equal(t, domain.ObjectiveConversions, objectiveOf("something else"))
}

func TestAudienceOf(t *testing.T) {
	a, err := audienceOf(AudienceInput{})
	require.NoError(t, err)
	assert.Equal(t, [2]int{25, 45}, a.AgeRange)
	assert.Equal(t, []string{"United States"}, a.Locations)

	_, err = audienceOf(AudienceInput{AgeRange: []int{18}})
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)

	_, err = audienceOf(AudienceInput{AgeRange: []int{50, 20}})
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)
}
