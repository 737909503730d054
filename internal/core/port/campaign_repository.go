package port

import (
	"context"

	"adcraft/internal/core/domain"
)

// CampaignRepository persists campaign records. It is an outbound port in
// hexagonal architecture. Implementations must be safe for concurrent use.
type CampaignRepository interface {
	// List returns the campaigns matching filter, most recently created
	// first.
	List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error)
	// Get returns a campaign by id or ErrCampaignNotFound.
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// Append stores a new campaign.
	Append(ctx context.Context, c domain.Campaign) error
	// Update merges patch into the stored campaign and returns the result.
	// Fields the patch leaves nil are preserved. Unknown ids yield
	// ErrCampaignNotFound.
	Update(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error)
	// Delete removes a campaign or returns ErrCampaignNotFound.
	Delete(ctx context.Context, id string) error
}
