package domain

// Metrics are simulated performance numbers attached to a campaign for
// display. They are derived data and can be recomputed at any time.
type Metrics struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
	Spend       int64 `json:"spend"`
	Revenue     int64 `json:"revenue"`
}

// Add returns the field-wise sum of m and o.
func (m Metrics) Add(o Metrics) Metrics {
	return Metrics{
		Impressions: m.Impressions + o.Impressions,
		Clicks:      m.Clicks + o.Clicks,
		Conversions: m.Conversions + o.Conversions,
		Spend:       m.Spend + o.Spend,
		Revenue:     m.Revenue + o.Revenue,
	}
}

// Performance holds KPIs derived from raw Metrics. Percentages are
// expressed in the 0..100 range.
type Performance struct {
	Metrics
	ROI            float64 `json:"roi"`
	ROAS           float64 `json:"roas"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversionRate"`
	CPC            float64 `json:"cpc"`
	CPA            float64 `json:"cpa"`
	CPM            float64 `json:"cpm"`
}

// CampaignPerformance is one row of the per-campaign analytics listing.
type CampaignPerformance struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Platform Platform `json:"platform"`
	Status   Status   `json:"status"`
	Performance
}

// Overview aggregates metrics across every stored campaign.
type Overview struct {
	TotalSpend        int64                `json:"totalSpend"`
	TotalRevenue      int64                `json:"totalRevenue"`
	TotalImpressions  int64                `json:"totalImpressions"`
	TotalClicks       int64                `json:"totalClicks"`
	TotalConversions  int64                `json:"totalConversions"`
	AverageROI        float64              `json:"averageROI"`
	AverageROAS       float64              `json:"averageROAS"`
	CTR               float64              `json:"ctr"`
	ConversionRate    float64              `json:"conversionRate"`
	CostPerClick      float64              `json:"costPerClick"`
	CostPerConversion float64              `json:"costPerConversion"`
	TotalCampaigns    int                  `json:"totalCampaigns"`
	ActiveCampaigns   int                  `json:"activeCampaigns"`
	TopCampaign       *CampaignPerformance `json:"topPerformingCampaign,omitempty"`
}
