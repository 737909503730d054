// Package analytics derives KPIs from campaign metrics and aggregates them
// across campaigns.
package analytics

import (
	"fmt"
	"slices"
	"time"

	"adcraft/internal/core/domain"
)

// Derive computes the KPIs of m. A ratio whose denominator is zero is
// reported as zero.
func Derive(m domain.Metrics) domain.Performance {
	spend := float64(m.Spend)
	revenue := float64(m.Revenue)
	impressions := float64(m.Impressions)
	clicks := float64(m.Clicks)
	conversions := float64(m.Conversions)

	return domain.Performance{
		Metrics:        m,
		ROI:            ratio(revenue-spend, spend) * 100,
		ROAS:           ratio(revenue, spend),
		CTR:            ratio(clicks, impressions) * 100,
		ConversionRate: ratio(conversions, clicks) * 100,
		CPC:            ratio(spend, clicks),
		CPA:            ratio(spend, conversions),
		CPM:            ratio(spend, impressions) * 1000,
	}
}

// Summarize aggregates the metrics of every campaign that carries them.
// Campaigns without metrics still count towards TotalCampaigns and
// ActiveCampaigns.
func Summarize(campaigns []domain.Campaign) domain.Overview {
	var (
		total domain.Metrics
		out   domain.Overview
	)
	for _, c := range campaigns {
		out.TotalCampaigns++
		if c.Status == domain.StatusActive {
			out.ActiveCampaigns++
		}
		if c.Metrics != nil {
			total = total.Add(*c.Metrics)
		}
	}

	perf := Derive(total)
	out.TotalSpend = total.Spend
	out.TotalRevenue = total.Revenue
	out.TotalImpressions = total.Impressions
	out.TotalClicks = total.Clicks
	out.TotalConversions = total.Conversions
	out.AverageROI = perf.ROI
	out.AverageROAS = perf.ROAS
	out.CTR = perf.CTR
	out.ConversionRate = perf.ConversionRate
	out.CostPerClick = perf.CPC
	out.CostPerConversion = perf.CPA

	if ranked := Rank(campaigns); len(ranked) > 0 {
		top := ranked[0]
		out.TopCampaign = &top
	}
	return out
}

// Rank returns the performance of every campaign that carries metrics,
// best ROI first. Ties keep the input order.
func Rank(campaigns []domain.Campaign) []domain.CampaignPerformance {
	out := make([]domain.CampaignPerformance, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Metrics == nil {
			continue
		}
		out = append(out, Of(c))
	}
	slices.SortStableFunc(out, func(a, b domain.CampaignPerformance) int {
		switch {
		case a.ROI > b.ROI:
			return -1
		case a.ROI < b.ROI:
			return 1
		}
		return 0
	})
	return out
}

// Of returns the performance row of a single campaign. A campaign without
// metrics yields zero KPIs.
func Of(c domain.Campaign) domain.CampaignPerformance {
	var m domain.Metrics
	if c.Metrics != nil {
		m = *c.Metrics
	}
	return domain.CampaignPerformance{
		ID:          c.ID,
		Name:        c.Name,
		Platform:    c.Platform,
		Status:      c.Status,
		Performance: Derive(m),
	}
}

// Window parses a reporting range ("7d", "30d", "90d", "1y") into the
// earliest creation time it covers. An empty range or "all" means no
// lower bound and yields the zero time.
func Window(rng string, now time.Time) (time.Time, error) {
	switch rng {
	case "", "all":
		return time.Time{}, nil
	case "7d":
		return now.AddDate(0, 0, -7), nil
	case "30d":
		return now.AddDate(0, 0, -30), nil
	case "90d":
		return now.AddDate(0, 0, -90), nil
	case "1y":
		return now.AddDate(-1, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("unknown range %q", rng)
}

// Since keeps the campaigns created at or after from.
func Since(campaigns []domain.Campaign, from time.Time) []domain.Campaign {
	if from.IsZero() {
		return campaigns
	}
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.CreatedAt.Before(from) {
			out = append(out, c)
		}
	}
	return out
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
