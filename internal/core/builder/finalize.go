package builder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"adcraft/internal/core/domain"
)

// ErrIncompleteDraft is returned when a draft is finalized before every
// required slot has been filled.
var ErrIncompleteDraft = errors.New("incomplete campaign draft")

// NewCampaignID returns a fresh campaign identifier.
func NewCampaignID() string {
	return "camp_" + uuid.NewString()
}

// Finalizer turns a confirmed draft into a campaign record. It has no side
// effects; persisting the record is up to the caller.
type Finalizer struct {
	newID  func() string
	now    func() time.Time
	status domain.Status
}

// NewFinalizer returns a Finalizer that stamps records with the given
// initial status. Nil generators fall back to NewCampaignID and time.Now.
func NewFinalizer(status domain.Status, newID func() string, now func() time.Time) *Finalizer {
	if newID == nil {
		newID = NewCampaignID
	}
	if now == nil {
		now = time.Now
	}
	if !status.Valid() {
		status = domain.StatusDraft
	}
	return &Finalizer{newID: newID, now: now, status: status}
}

// Finalize builds the campaign record for d.
func (f *Finalizer) Finalize(d domain.Draft) (domain.Campaign, error) {
	var missing []string
	if d.Objective == nil {
		missing = append(missing, string(domain.SlotObjective))
	}
	if d.Platform == nil {
		missing = append(missing, string(domain.SlotPlatform))
	}
	if d.Budget == nil || *d.Budget <= 0 {
		missing = append(missing, string(domain.SlotBudget))
	}
	if d.TargetAudience == nil {
		missing = append(missing, string(domain.SlotAudience))
	}
	if d.Name == nil || strings.TrimSpace(*d.Name) == "" {
		missing = append(missing, string(domain.SlotName))
	}
	if len(missing) > 0 {
		return domain.Campaign{}, fmt.Errorf("%w: missing %s", ErrIncompleteDraft, strings.Join(missing, ", "))
	}

	d = d.Clone()
	createdAt := f.now().UTC()
	return domain.Campaign{
		ID:             f.newID(),
		Name:           *d.Name,
		Platform:       *d.Platform,
		Objective:      *d.Objective,
		ObjectiveText:  d.ObjectiveText,
		Budget:         *d.Budget,
		DailyBudget:    d.DailyBudget,
		TargetAudience: d.TargetAudience,
		Schedule:       d.Schedule,
		Status:         f.status,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}, nil
}
