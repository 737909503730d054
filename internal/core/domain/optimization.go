package domain

// OptimizationGoal is what the advertiser wants a campaign to improve.
type OptimizationGoal string

const (
	GoalROI         OptimizationGoal = "roi"
	GoalReach       OptimizationGoal = "reach"
	GoalEngagement  OptimizationGoal = "engagement"
	GoalConversions OptimizationGoal = "conversions"
)

// Recommendation is optimization advice for one campaign.
// EstimatedImprovement is a percentage.
type Recommendation struct {
	CampaignID           string           `json:"campaignId,omitempty"`
	Goal                 OptimizationGoal `json:"goal"`
	Recommendations      []string         `json:"recommendations"`
	EstimatedImprovement int              `json:"estimatedImprovement"`
}
