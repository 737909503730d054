package domain

// Phase is the coarse position of a builder conversation.
type Phase string

const (
	PhaseInitial    Phase = "initial"
	PhaseGathering  Phase = "gathering"
	PhaseConfirming Phase = "confirming"
	PhaseReady      Phase = "ready"
)

// Rank orders phases along initial → gathering → confirming → ready.
// Unknown phases rank as initial.
func (p Phase) Rank() int {
	switch p {
	case PhaseGathering:
		return 1
	case PhaseConfirming:
		return 2
	case PhaseReady:
		return 3
	default:
		return 0
	}
}

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseInitial, PhaseGathering, PhaseConfirming, PhaseReady:
		return true
	}
	return false
}

// Slot names one field of a Draft.
type Slot string

const (
	SlotObjective Slot = "objective"
	SlotPlatform  Slot = "platform"
	SlotBudget    Slot = "budget"
	SlotAudience  Slot = "audience"
	SlotSchedule  Slot = "schedule"
	SlotName      Slot = "name"
)

// Draft is the campaign specification accumulated across builder turns.
// A nil slot has not been filled yet. ObjectiveText travels with Objective
// and DailyBudget is derived from Budget and Schedule.
type Draft struct {
	Objective      *Objective `json:"objective,omitempty"`
	ObjectiveText  string     `json:"objectiveText,omitempty"`
	Platform       *Platform  `json:"platform,omitempty"`
	Budget         *int64     `json:"budget,omitempty"`
	DailyBudget    int64      `json:"dailyBudget,omitempty"`
	TargetAudience *Audience  `json:"targetAudience,omitempty"`
	Schedule       *Schedule  `json:"schedule,omitempty"`
	Name           *string    `json:"name,omitempty"`
}

// Clone returns a deep copy so that callers can never alias slot values.
func (d Draft) Clone() Draft {
	out := Draft{ObjectiveText: d.ObjectiveText, DailyBudget: d.DailyBudget}
	if d.Objective != nil {
		v := *d.Objective
		out.Objective = &v
	}
	if d.Platform != nil {
		v := *d.Platform
		out.Platform = &v
	}
	if d.Budget != nil {
		v := *d.Budget
		out.Budget = &v
	}
	if d.TargetAudience != nil {
		v := d.TargetAudience.Clone()
		out.TargetAudience = &v
	}
	if d.Schedule != nil {
		v := *d.Schedule
		out.Schedule = &v
	}
	if d.Name != nil {
		v := *d.Name
		out.Name = &v
	}
	return out
}

// Has reports whether slot s is filled.
func (d Draft) Has(s Slot) bool {
	switch s {
	case SlotObjective:
		return d.Objective != nil
	case SlotPlatform:
		return d.Platform != nil
	case SlotBudget:
		return d.Budget != nil
	case SlotAudience:
		return d.TargetAudience != nil
	case SlotSchedule:
		return d.Schedule != nil
	case SlotName:
		return d.Name != nil
	}
	return false
}

// Clear empties slot s. Clearing the objective also drops its text and
// clearing the budget drops the derived daily budget.
func (d *Draft) Clear(s Slot) {
	switch s {
	case SlotObjective:
		d.Objective = nil
		d.ObjectiveText = ""
	case SlotPlatform:
		d.Platform = nil
	case SlotBudget:
		d.Budget = nil
		d.DailyBudget = 0
	case SlotAudience:
		d.TargetAudience = nil
	case SlotSchedule:
		d.Schedule = nil
	case SlotName:
		d.Name = nil
	}
}
