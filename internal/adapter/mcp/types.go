package mcpadapter

import (
	"time"

	"adcraft/internal/core/domain"
)

// CreateCampaignInput is the input of the create_ad_campaign tool.
type CreateCampaignInput struct {
	Name            string         `json:"name" jsonschema:"campaign name"`
	Platform        string         `json:"platform" jsonschema:"advertising platform (meta, google, tiktok, linkedin, multi)"`
	Objective       string         `json:"objective" jsonschema:"campaign objective (e.g. conversions, leads, brand_awareness, traffic)"`
	Budget          int64          `json:"budget" jsonschema:"budget in USD"`
	TargetAudience  AudienceInput  `json:"target_audience" jsonschema:"who the campaign targets"`
	GenerateContent *ContentToggle `json:"generate_content,omitempty" jsonschema:"AI content to generate alongside the campaign"`
}

// AudienceInput describes the targeting of a new campaign.
type AudienceInput struct {
	AgeRange  []int    `json:"age_range,omitempty" jsonschema:"min and max age"`
	Interests []string `json:"interests,omitempty" jsonschema:"target interests"`
	Locations []string `json:"locations,omitempty" jsonschema:"target locations"`
}

// ContentToggle selects the creatives generated with a campaign.
type ContentToggle struct {
	Image bool `json:"image,omitempty" jsonschema:"generate an AI image"`
	Video bool `json:"video,omitempty" jsonschema:"generate an AI video"`
	Copy  bool `json:"copy,omitempty" jsonschema:"generate AI ad copy"`
}

// CreateCampaignResult is the output of the create_ad_campaign tool.
type CreateCampaignResult struct {
	Success          bool             `json:"success"`
	Campaign         CampaignSummary  `json:"campaign"`
	GeneratedContent GeneratedContent `json:"generated_content"`
	Message          string           `json:"message"`
}

// GeneratedContent holds the creatives produced for a new campaign.
type GeneratedContent struct {
	Image *domain.Content `json:"image,omitempty"`
	Video *domain.Content `json:"video,omitempty"`
	Copy  *domain.Content `json:"copy,omitempty"`
}

// CampaignSummary is the tool-facing view of a campaign.
type CampaignSummary struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Platform       string         `json:"platform"`
	Objective      string         `json:"objective"`
	Status         string         `json:"status"`
	Budget         int64          `json:"budget"`
	DailyBudget    int64          `json:"daily_budget,omitempty"`
	TargetAudience *AudienceInput `json:"target_audience,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

// GenerateContentInput is the input of the generate_content tool.
type GenerateContentInput struct {
	Type       string           `json:"type" jsonschema:"content type (image, video, copy)"`
	Prompt     string           `json:"prompt" jsonschema:"generation prompt"`
	Style      string           `json:"style,omitempty" jsonschema:"visual style or tone"`
	Dimensions *DimensionsInput `json:"dimensions,omitempty" jsonschema:"image size in pixels"`
}

// DimensionsInput is an image size.
type DimensionsInput struct {
	Width  int `json:"width" jsonschema:"width in pixels"`
	Height int `json:"height" jsonschema:"height in pixels"`
}

// GenerateContentResult is the output of the generate_content tool.
type GenerateContentResult struct {
	Success bool           `json:"success"`
	Content domain.Content `json:"content"`
}

// CampaignROIInput is the input of the get_campaign_roi tool.
type CampaignROIInput struct {
	CampaignID string     `json:"campaign_id" jsonschema:"campaign identifier"`
	DateRange  *DateRange `json:"date_range,omitempty" jsonschema:"reporting period"`
}

// DateRange is an ISO-8601 reporting period. Metrics are simulated per
// campaign, so the range is echoed back but does not scale the numbers.
type DateRange struct {
	Start string `json:"start,omitempty" jsonschema:"start date (ISO format)"`
	End   string `json:"end,omitempty" jsonschema:"end date (ISO format)"`
}

// CampaignROIResult is the output of the get_campaign_roi tool.
type CampaignROIResult struct {
	Success bool      `json:"success"`
	ROI     ROIReport `json:"roi"`
}

// ROIReport lists the KPIs of one campaign.
type ROIReport struct {
	CampaignID     string     `json:"campaign_id"`
	Name           string     `json:"name"`
	Spend          int64      `json:"spend"`
	Revenue        int64      `json:"revenue"`
	ROI            float64    `json:"roi"`
	ROAS           float64    `json:"roas"`
	Impressions    int64      `json:"impressions"`
	Clicks         int64      `json:"clicks"`
	Conversions    int64      `json:"conversions"`
	CTR            float64    `json:"ctr"`
	CPC            float64    `json:"cpc"`
	CPM            float64    `json:"cpm"`
	ConversionRate float64    `json:"conversionRate"`
	DateRange      *DateRange `json:"date_range,omitempty"`
}

// OptimizeCampaignInput is the input of the optimize_campaign tool.
type OptimizeCampaignInput struct {
	CampaignID       string `json:"campaign_id" jsonschema:"campaign identifier"`
	OptimizationGoal string `json:"optimization_goal" jsonschema:"optimization objective (roi, reach, engagement, conversions)"`
}

// OptimizeCampaignResult is the output of the optimize_campaign tool.
type OptimizeCampaignResult struct {
	Success      bool                  `json:"success"`
	Optimization domain.Recommendation `json:"optimization"`
}

// ListCampaignsInput is the input of the list_campaigns tool.
type ListCampaignsInput struct {
	Platform string `json:"platform,omitempty" jsonschema:"filter by platform (meta, google, tiktok, linkedin, all)"`
	Status   string `json:"status,omitempty" jsonschema:"filter by status (active, paused, completed, all)"`
}

// ListCampaignsResult is the output of the list_campaigns tool.
type ListCampaignsResult struct {
	Success   bool              `json:"success"`
	Campaigns []CampaignSummary `json:"campaigns"`
}

func summarize(c domain.Campaign) CampaignSummary {
	s := CampaignSummary{
		ID:          c.ID,
		Name:        c.Name,
		Platform:    string(c.Platform),
		Objective:   string(c.Objective),
		Status:      string(c.Status),
		Budget:      c.Budget,
		DailyBudget: c.DailyBudget,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a := c.TargetAudience; a != nil {
		s.TargetAudience = &AudienceInput{
			AgeRange:  []int{a.AgeRange[0], a.AgeRange[1]},
			Interests: append([]string(nil), a.Interests...),
			Locations: append([]string(nil), a.Locations...),
		}
	}
	return s
}

func summarizeAll(campaigns []domain.Campaign) []CampaignSummary {
	out := make([]CampaignSummary, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, summarize(c))
	}
	return out
}
