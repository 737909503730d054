package builder

import "adcraft/internal/core/domain"

// DefaultTable lists the value every extractor falls back to when a message
// carries nothing it recognises. One field per slot component.
type DefaultTable struct {
	Objective    domain.Objective
	Platform     domain.Platform
	Budget       int64
	DailyBudget  int64
	AgeRange     [2]int
	Locations    []string
	Interests    []string
	DurationDays int
}

// Defaults is the fallback table used by the extractors.
var Defaults = DefaultTable{
	Objective:    domain.ObjectiveConversions,
	Platform:     domain.PlatformMeta,
	Budget:       5000,
	DailyBudget:  167,
	AgeRange:     [2]int{25, 45},
	Locations:    []string{"United States"},
	Interests:    []string{"general"},
	DurationDays: 30,
}

// assumedDurationDays spreads the budget when no schedule is known yet.
const assumedDurationDays = 30

var objectiveKeywords = []struct {
	keywords  []string
	objective domain.Objective
	text      string
}{
	{[]string{"sales", "sell"}, domain.ObjectiveConversions, "increase sales"},
	{[]string{"lead", "contact"}, domain.ObjectiveLeads, "generate leads"},
	{[]string{"awareness", "brand"}, domain.ObjectiveAwareness, "build brand awareness"},
	{[]string{"traffic", "visit"}, domain.ObjectiveTraffic, "drive website traffic"},
}

var platformKeywords = []struct {
	keywords []string
	platform domain.Platform
}{
	{[]string{"meta", "facebook", "instagram"}, domain.PlatformMeta},
	{[]string{"google"}, domain.PlatformGoogle},
	{[]string{"tiktok"}, domain.PlatformTikTok},
	{[]string{"linkedin"}, domain.PlatformLinkedIn},
	{[]string{"multiple", "all"}, domain.PlatformMulti},
}

// Gazetteer is matched by substring, so short entries such as "us" also hit
// words like "business".
var locationKeywords = []string{
	"united states", "usa", "us", "america",
	"canada", "uk", "united kingdom", "australia",
	"germany", "france", "spain", "italy",
	"brazil", "mexico", "argentina",
}

var interestKeywords = []string{
	"technology", "tech", "fitness", "health", "business",
	"marketing", "fashion", "travel", "food", "sports",
	"gaming", "music", "art", "education", "finance",
}

var affirmations = []string{"yes", "confirm", "looks good", "perfect"}

// editKeywords maps words in a rejection to the slot the user wants to
// change.
var editKeywords = []struct {
	keywords []string
	slot     domain.Slot
}{
	{[]string{"objective", "goal"}, domain.SlotObjective},
	{[]string{"platform", "channel", "network"}, domain.SlotPlatform},
	{[]string{"budget", "spend", "money"}, domain.SlotBudget},
	{[]string{"audience", "age", "location", "interest", "target"}, domain.SlotAudience},
	{[]string{"schedule", "date", "duration", "start"}, domain.SlotSchedule},
	{[]string{"name", "title"}, domain.SlotName},
}
