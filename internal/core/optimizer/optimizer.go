// Package optimizer produces canned optimization advice for a campaign.
package optimizer

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"adcraft/internal/core/domain"
)

// ErrUnknownGoal is returned for a goal outside the supported set.
var ErrUnknownGoal = errors.New("unknown optimization goal")

var playbook = map[domain.OptimizationGoal][]string{
	domain.GoalROI: {
		"Increase budget allocation to top-performing ad sets by 20%",
		"Pause underperforming ads with ROI < 100%",
		"Test new audience segments with similar interests",
		"Implement dynamic creative optimization",
	},
	domain.GoalReach: {
		"Expand geographic targeting to similar markets",
		"Increase daily budget by 30%",
		"Adjust bid strategy to maximize reach",
		"Test broader interest targeting",
	},
	domain.GoalEngagement: {
		"A/B test video vs. image creatives",
		"Optimize posting times based on audience activity",
		"Add interactive elements (polls, questions)",
		"Refresh creative assets weekly",
	},
	domain.GoalConversions: {
		"Implement conversion tracking pixels",
		"Create lookalike audiences from converters",
		"Optimize landing page for mobile",
		"Test different call-to-action buttons",
	},
}

// Goals lists the supported goals.
func Goals() []domain.OptimizationGoal {
	return []domain.OptimizationGoal{domain.GoalROI, domain.GoalReach, domain.GoalEngagement, domain.GoalConversions}
}

// Recommend returns the playbook for goal with an improvement estimate
// drawn uniformly from 15 to 44 percent. A nil rng uses the global source.
func Recommend(goal domain.OptimizationGoal, rng *rand.Rand) (domain.Recommendation, error) {
	recs, ok := playbook[goal]
	if !ok {
		return domain.Recommendation{}, fmt.Errorf("%w: %q", ErrUnknownGoal, goal)
	}
	var n int
	if rng != nil {
		n = rng.IntN(30)
	} else {
		n = rand.IntN(30)
	}
	return domain.Recommendation{
		Goal:                 goal,
		Recommendations:      append([]string(nil), recs...),
		EstimatedImprovement: 15 + n,
	}, nil
}
