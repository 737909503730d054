package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
	"adcraft/internal/core/port/mocks"
)

type fixture struct {
	campaigns *mocks.MockCampaignUseCase
	builder   *mocks.MockBuilderUseCase
	content   *mocks.MockContentUseCase
	server    http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		campaigns: mocks.NewMockCampaignUseCase(t),
		builder:   mocks.NewMockBuilderUseCase(t),
		content:   mocks.NewMockContentUseCase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(f.campaigns, f.builder, f.content, []string{"*"}, logger)
	h.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	f.server = h.Router()
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "2026-03-10T09:00:00Z", body["timestamp"])
}

func TestListCampaigns(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().
		List(mock.Anything, domain.CampaignFilter{Platform: "meta", Status: "active"}).
		Return([]domain.Campaign{{ID: "camp_1", Name: "Summer Sale 2024"}}, nil)

	rec := f.do(http.MethodGet, "/api/campaigns?platform=meta&status=active", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeBody[campaignsResponse](t, rec)
	require.Len(t, body.Campaigns, 1)
	assert.Equal(t, "camp_1", body.Campaigns[0].ID)
}

func TestListCampaigns_EmptyIsArray(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().List(mock.Anything, domain.CampaignFilter{}).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/campaigns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaigns":[]}`, rec.Body.String())
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().
		Create(mock.Anything, port.CampaignInput{Name: "Launch", Platform: domain.PlatformGoogle, Budget: 500}).
		Return(&domain.Campaign{ID: "camp_9", Name: "Launch"}, nil)

	rec := f.do(http.MethodPost, "/api/campaigns", `{"name":"Launch","platform":"google","budget":500}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[campaignResponse](t, rec)
	assert.Equal(t, "camp_9", body.Campaign.ID)
}

func TestCreateCampaign_BadRequests(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/api/campaigns", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.campaigns.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, errors.Join(port.ErrInvalidCampaign, errors.New("name is required")))
	rec = f.do(http.MethodPost, "/api/campaigns", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCampaign_NotFound(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Get(mock.Anything, "nope").Return(nil, port.ErrCampaignNotFound)

	rec := f.do(http.MethodGet, "/api/campaigns/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"campaign not found"}`, rec.Body.String())
}

func TestUpdateCampaign_Partial(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().
		Update(mock.Anything, "camp_1", mock.MatchedBy(func(p domain.CampaignPatch) bool {
			return p.Status != nil && *p.Status == domain.StatusPaused && p.Name == nil && p.Budget == nil
		})).
		Return(&domain.Campaign{ID: "camp_1", Status: domain.StatusPaused}, nil)

	rec := f.do(http.MethodPut, "/api/campaigns/camp_1", `{"status":"paused"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[campaignResponse](t, rec)
	assert.Equal(t, domain.StatusPaused, body.Campaign.Status)
}

func TestDeleteCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Delete(mock.Anything, "camp_1").Return(nil)

	rec := f.do(http.MethodDelete, "/api/campaigns/camp_1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Campaign deleted successfully"}`, rec.Body.String())
}

func TestOptimizeCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Optimize(mock.Anything, "camp_1", domain.GoalROI).Return(&domain.Recommendation{
		CampaignID: "camp_1", Goal: domain.GoalROI, Recommendations: []string{"a"}, EstimatedImprovement: 20,
	}, nil)
	f.campaigns.EXPECT().Optimize(mock.Anything, "camp_1", domain.GoalReach).Return(&domain.Recommendation{
		CampaignID: "camp_1", Goal: domain.GoalReach,
	}, nil)

	rec := f.do(http.MethodPost, "/api/campaigns/camp_1/optimize", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.GoalROI, decodeBody[domain.Recommendation](t, rec).Goal)

	rec = f.do(http.MethodPost, "/api/campaigns/camp_1/optimize", `{"goal":"reach"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.GoalReach, decodeBody[domain.Recommendation](t, rec).Goal)
}

func TestBuilderTurn(t *testing.T) {
	f := newFixture(t)
	objective := domain.ObjectiveConversions
	f.builder.EXPECT().
		Turn(mock.Anything, mock.MatchedBy(func(req port.BuilderRequest) bool {
			return req.Message == "meta" && req.Phase == domain.PhaseGathering &&
				req.Draft.Objective != nil && *req.Draft.Objective == domain.ObjectiveConversions &&
				len(req.History) == 1
		})).
		Return(&port.BuilderResponse{
			Message: "Great choice!",
			Draft:   domain.Draft{Objective: &objective},
			Phase:   domain.PhaseGathering,
		}, nil)

	rec := f.do(http.MethodPost, "/api/campaigns/ai-builder", `{
		"userMessage": "meta",
		"conversationHistory": [{"role": "user", "content": "I want to increase sales"}],
		"currentData": {"objective": "conversions", "objectiveText": "increase sales"},
		"state": "gathering"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Great choice!", body["message"])
	assert.Equal(t, "gathering", body["state"])
	assert.Contains(t, body, "campaignData")
	assert.NotContains(t, body, "campaign")
}

func TestConversationMessage(t *testing.T) {
	f := newFixture(t)
	f.builder.EXPECT().Converse(mock.Anything, "conv-1", "hello").
		Return(&port.BuilderResponse{Message: "hi", Phase: domain.PhaseGathering}, nil)
	f.builder.EXPECT().Converse(mock.Anything, "conv-2", "hello").
		Return(nil, port.ErrConversationBusy)

	rec := f.do(http.MethodPost, "/api/conversations/conv-1/messages", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPost, "/api/conversations/conv-2/messages", `{"message":"hello"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAnalytics(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Overview(mock.Anything, "30d").Return(&domain.Overview{TotalSpend: 1500, TotalCampaigns: 2}, nil)
	f.campaigns.EXPECT().Overview(mock.Anything, "forever").Return(nil, port.ErrInvalidArgument)
	f.campaigns.EXPECT().Performance(mock.Anything, "").Return([]domain.CampaignPerformance{{ID: "camp_1"}}, nil)
	f.campaigns.EXPECT().CampaignPerformance(mock.Anything, "camp_1").Return(&domain.CampaignPerformance{
		ID: "camp_1", Performance: domain.Performance{ROI: 250, Metrics: domain.Metrics{Spend: 1000}},
	}, nil)

	rec := f.do(http.MethodGet, "/api/analytics/overview?range=30d", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1500), decodeBody[domain.Overview](t, rec).TotalSpend)

	rec = f.do(http.MethodGet, "/api/analytics/overview?range=forever", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/analytics/campaigns", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[performanceResponse](t, rec).Campaigns, 1)

	rec = f.do(http.MethodGet, "/api/analytics/campaigns/camp_1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "camp_1", body["campaignId"])
	metrics := body["metrics"].(map[string]any)
	assert.InDelta(t, 250, metrics["roi"], 1e-9)
	assert.InDelta(t, 1000, metrics["spend"], 1e-9)
}

func TestGenerateContent(t *testing.T) {
	f := newFixture(t)
	f.content.EXPECT().
		Generate(mock.Anything, domain.ContentRequest{Kind: domain.ContentCopy, Prompt: "tech sale"}).
		Return(&domain.Content{Kind: domain.ContentCopy, Headline: "💻 Tech Deals"}, nil)
	f.content.EXPECT().
		Generate(mock.Anything, domain.ContentRequest{Kind: "hologram"}).
		Return(nil, port.ErrInvalidContentKind)

	rec := f.do(http.MethodPost, "/api/content/generate", `{"type":"copy","prompt":"tech sale"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[contentResponse](t, rec)
	assert.Equal(t, "💻 Tech Deals", body.Content.Headline)

	rec = f.do(http.MethodPost, "/api/content/generate", `{"type":"hologram"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnexpectedErrorIsGeneric(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

	rec := f.do(http.MethodGet, "/api/campaigns", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch campaigns"}`, rec.Body.String())
}

func TestPanicIsRecovered(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().Get(mock.Anything, "boom").Run(func(_ context.Context, _ string) {
		panic("unexpected")
	}).Return(nil, nil)

	rec := f.do(http.MethodGet, "/api/campaigns/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORS(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/campaigns", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
