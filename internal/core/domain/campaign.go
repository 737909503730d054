package domain

import "time"

// Objective is the business goal a campaign optimises for.
type Objective string

const (
	ObjectiveConversions Objective = "conversions"
	ObjectiveLeads       Objective = "leads"
	ObjectiveAwareness   Objective = "awareness"
	ObjectiveTraffic     Objective = "traffic"
)

// Platform is the advertising network a campaign runs on. PlatformMulti
// spreads the campaign across every supported network.
type Platform string

const (
	PlatformMeta     Platform = "meta"
	PlatformGoogle   Platform = "google"
	PlatformTikTok   Platform = "tiktok"
	PlatformLinkedIn Platform = "linkedin"
	PlatformMulti    Platform = "multi"
)

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformMeta, PlatformGoogle, PlatformTikTok, PlatformLinkedIn, PlatformMulti:
		return true
	}
	return false
}

// DisplayName returns the human readable platform label used in replies.
func (p Platform) DisplayName() string {
	if p == PlatformMeta {
		return "Meta"
	}
	return string(p)
}

// Status is the lifecycle state of a persisted campaign.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

// Audience describes who a campaign targets. Locations and Interests keep
// the order in which they were detected.
type Audience struct {
	AgeRange  [2]int   `json:"ageRange"`
	Locations []string `json:"locations"`
	Interests []string `json:"interests"`
}

// Clone returns a deep copy of the audience.
func (a Audience) Clone() Audience {
	a.Locations = append([]string(nil), a.Locations...)
	a.Interests = append([]string(nil), a.Interests...)
	return a
}

// Schedule is the flight of a campaign. Dates are calendar dates formatted
// as YYYY-MM-DD; Duration is in days.
type Schedule struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Duration  int    `json:"duration"`
}

// Campaign represents an advertising campaign.
// Budgets are stored in integer currency units.
type Campaign struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Platform       Platform  `json:"platform"`
	Objective      Objective `json:"objective"`
	ObjectiveText  string    `json:"objectiveText,omitempty"`
	Budget         int64     `json:"budget"`
	DailyBudget    int64     `json:"dailyBudget,omitempty"`
	TargetAudience *Audience `json:"targetAudience,omitempty"`
	Schedule       *Schedule `json:"schedule,omitempty"`
	Status         Status    `json:"status"` // draft, active, paused, completed
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Metrics        *Metrics  `json:"metrics,omitempty"`
}

// CampaignPatch carries a partial update. Nil fields are left untouched.
type CampaignPatch struct {
	Name           *string    `json:"name,omitempty"`
	Platform       *Platform  `json:"platform,omitempty"`
	Objective      *Objective `json:"objective,omitempty"`
	Budget         *int64     `json:"budget,omitempty"`
	DailyBudget    *int64     `json:"dailyBudget,omitempty"`
	TargetAudience *Audience  `json:"targetAudience,omitempty"`
	Schedule       *Schedule  `json:"schedule,omitempty"`
	Status         *Status    `json:"status,omitempty"`
	Metrics        *Metrics   `json:"metrics,omitempty"`

	// UpdatedAt is stamped by the service, never decoded from clients.
	UpdatedAt time.Time `json:"-"`
}

// Apply merges the patch into c and returns the result. Fields the patch
// leaves nil keep their previous value.
func (p CampaignPatch) Apply(c Campaign) Campaign {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Platform != nil {
		c.Platform = *p.Platform
	}
	if p.Objective != nil {
		c.Objective = *p.Objective
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.DailyBudget != nil {
		c.DailyBudget = *p.DailyBudget
	}
	if p.TargetAudience != nil {
		a := p.TargetAudience.Clone()
		c.TargetAudience = &a
	}
	if p.Schedule != nil {
		s := *p.Schedule
		c.Schedule = &s
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Metrics != nil {
		m := *p.Metrics
		c.Metrics = &m
	}
	if !p.UpdatedAt.IsZero() {
		c.UpdatedAt = p.UpdatedAt
	}
	return c
}

// CampaignFilter narrows a campaign listing. Empty values and "all" match
// everything.
type CampaignFilter struct {
	Platform string
	Status   string
}

// Match reports whether c passes the filter.
func (f CampaignFilter) Match(c Campaign) bool {
	if f.Platform != "" && f.Platform != "all" && string(c.Platform) != f.Platform {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(c.Status) != f.Status {
		return false
	}
	return true
}
