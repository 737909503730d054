// Package builder implements the conversational campaign builder: a set of
// total slot extractors and a state machine that fills a campaign draft one
// slot per turn, asks for confirmation and finalizes the campaign record.
//
// Every function in this package is pure apart from the injected clock and
// identifier generator. A turn never fails; unrecognised input falls back
// to the documented slot defaults so the conversation always moves forward.
package builder

import (
	"math"
	"regexp"
	"strings"
	"time"

	"adcraft/internal/core/domain"
)

// Config tunes a Machine.
type Config struct {
	// ScheduleStep adds the schedule slot between audience and name.
	ScheduleStep bool
	// Status is the initial status of finalized campaigns.
	Status domain.Status
	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string
}

// Input is one user turn together with the state echoed back by the caller.
// History is accepted for wire compatibility and is not interpreted.
type Input struct {
	Message string
	Draft   domain.Draft
	Phase   domain.Phase
	History []domain.Turn
}

// Output is the result of a turn. Campaign is set only on the turn that
// moves the conversation to PhaseReady.
type Output struct {
	Reply    string
	Draft    domain.Draft
	Phase    domain.Phase
	Campaign *domain.Campaign
}

// slotDef binds a slot to its extractor and its scripted messages. ack
// acknowledges the value just filled; ask requests the slot's value.
type slotDef struct {
	slot domain.Slot
	fill func(m *Machine, msg string, d *domain.Draft)
	ack  func(d domain.Draft) string
	ask  string
}

var (
	objectiveSlot = slotDef{
		slot: domain.SlotObjective,
		fill: func(_ *Machine, msg string, d *domain.Draft) {
			ex := ExtractObjective(msg)
			d.Objective = &ex.Value
			d.ObjectiveText = ex.Text
		},
		ack: ackObjective,
		ask: askObjective,
	}
	platformSlot = slotDef{
		slot: domain.SlotPlatform,
		fill: func(_ *Machine, msg string, d *domain.Draft) {
			ex := ExtractPlatform(msg)
			d.Platform = &ex.Value
		},
		ack: ackPlatform,
		ask: askPlatform,
	}
	budgetSlot = slotDef{
		slot: domain.SlotBudget,
		fill: func(_ *Machine, msg string, d *domain.Draft) {
			ex := ExtractBudget(msg)
			d.Budget = &ex.Value
			d.DailyBudget = dailyBudget(*d)
		},
		ack: ackBudget,
		ask: askBudget,
	}
	audienceSlot = slotDef{
		slot: domain.SlotAudience,
		fill: func(_ *Machine, msg string, d *domain.Draft) {
			ex := ExtractAudience(msg)
			d.TargetAudience = &ex.Value
		},
		ack: ackAudience,
		ask: askAudience,
	}
	scheduleSlot = slotDef{
		slot: domain.SlotSchedule,
		fill: func(m *Machine, msg string, d *domain.Draft) {
			ex := ExtractSchedule(msg, m.now())
			d.Schedule = &ex.Value
			d.DailyBudget = dailyBudget(*d)
		},
		ack: ackSchedule,
		ask: askSchedule,
	}
	nameSlot = slotDef{
		slot: domain.SlotName,
		fill: func(_ *Machine, msg string, d *domain.Draft) {
			ex := ExtractName(msg, d.ObjectiveText, platformOf(*d))
			d.Name = &ex.Value
		},
		ask: askName,
	}
)

// editPatterns match the words a user may use to name the field to change
// after rejecting the summary. Keywords match at the start of a word.
var editPatterns = func() map[domain.Slot]*regexp.Regexp {
	out := make(map[domain.Slot]*regexp.Regexp, len(editKeywords))
	for _, entry := range editKeywords {
		quoted := make([]string, len(entry.keywords))
		for i, kw := range entry.keywords {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		out[entry.slot] = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)`)
	}
	return out
}()

// Machine drives a builder conversation. It holds no per-conversation
// state and is safe for concurrent use.
type Machine struct {
	slots     []slotDef
	finalizer *Finalizer
	now       func() time.Time
}

// NewMachine builds a Machine from cfg.
func NewMachine(cfg Config) *Machine {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	slots := []slotDef{objectiveSlot, platformSlot, budgetSlot, audienceSlot}
	if cfg.ScheduleStep {
		slots = append(slots, scheduleSlot)
	}
	slots = append(slots, nameSlot)
	return &Machine{
		slots:     slots,
		finalizer: NewFinalizer(cfg.Status, cfg.NewID, now),
		now:       now,
	}
}

// Slots returns the slot order the machine asks in.
func (m *Machine) Slots() []domain.Slot {
	out := make([]domain.Slot, len(m.slots))
	for i, def := range m.slots {
		out[i] = def.slot
	}
	return out
}

// Advance processes one user turn. The input draft is never modified.
func (m *Machine) Advance(in Input) Output {
	draft := in.Draft.Clone()
	phase := in.Phase
	if !phase.Valid() {
		phase = domain.PhaseInitial
	}

	if phase == domain.PhaseReady {
		return Output{Reply: alreadyCreatedReply(draft), Draft: draft, Phase: domain.PhaseReady}
	}

	pending := m.pending(draft)
	if pending == nil {
		if phase == domain.PhaseConfirming {
			return m.confirm(in.Message, draft)
		}
		return Output{Reply: summary(draft), Draft: draft, Phase: domain.PhaseConfirming}
	}

	// A confirming phase with an incomplete draft keeps gathering; a
	// campaign is never finalized from a partial draft.
	pending.fill(m, in.Message, &draft)
	next := m.pending(draft)
	if next == nil {
		return Output{Reply: summary(draft), Draft: draft, Phase: domain.PhaseConfirming}
	}
	reply := next.ask
	if pending.ack != nil {
		reply = pending.ack(draft) + "\n\n" + next.ask
	}
	return Output{Reply: reply, Draft: draft, Phase: domain.PhaseGathering}
}

func (m *Machine) confirm(msg string, draft domain.Draft) Output {
	lower := strings.ToLower(msg)
	if containsAny(lower, affirmations) {
		campaign, err := m.finalizer.Finalize(draft)
		if err != nil {
			return Output{Reply: summary(draft), Draft: draft, Phase: domain.PhaseConfirming}
		}
		return Output{Reply: createdReply(campaign), Draft: draft, Phase: domain.PhaseReady, Campaign: &campaign}
	}

	edits := m.requestedEdits(lower)
	if len(edits) == 0 {
		// Nothing named: the draft stays complete, so the next turn goes
		// straight back to the summary.
		return Output{Reply: changeMenu, Draft: draft, Phase: domain.PhaseGathering}
	}
	for _, s := range edits {
		draft.Clear(s)
	}
	draft.DailyBudget = dailyBudget(draft)
	return Output{Reply: editReply(edits, m.pending(draft).ask), Draft: draft, Phase: domain.PhaseGathering}
}

// requestedEdits returns the slots named in a rejection, in slot order.
func (m *Machine) requestedEdits(lower string) []domain.Slot {
	var out []domain.Slot
	for _, def := range m.slots {
		if re, ok := editPatterns[def.slot]; ok && re.MatchString(lower) {
			out = append(out, def.slot)
		}
	}
	return out
}

func (m *Machine) pending(d domain.Draft) *slotDef {
	for i := range m.slots {
		if !d.Has(m.slots[i].slot) {
			return &m.slots[i]
		}
	}
	return nil
}

// dailyBudget spreads the budget over the schedule, or over a 30 day month
// while the schedule is unknown.
func dailyBudget(d domain.Draft) int64 {
	if d.Budget == nil {
		return 0
	}
	days := assumedDurationDays
	if d.Schedule != nil && d.Schedule.Duration > 0 {
		days = d.Schedule.Duration
	}
	return int64(math.Round(float64(*d.Budget) / float64(days)))
}
