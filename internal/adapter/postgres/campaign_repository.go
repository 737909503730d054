package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

const campaignColumns = `id, name, platform, objective, objective_text, budget, daily_budget,
            target_audience, schedule, status, metrics, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Audience, schedule and metrics are stored as JSONB.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// List returns campaigns matching filter, newest first.
func (r *CampaignRepository) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	query, args := listQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Append inserts a new campaign.
func (r *CampaignRepository) Append(ctx context.Context, c domain.Campaign) error {
	audience, schedule, metrics, err := encodeJSONColumns(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, name, platform, objective, objective_text, budget, daily_budget,
     target_audience, schedule, status, metrics, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ID, c.Name, c.Platform, c.Objective, c.ObjectiveText, c.Budget, c.DailyBudget,
		audience, schedule, c.Status, metrics, c.CreatedAt, c.UpdatedAt)
	return err
}

// Update locks the row, merges patch into it and writes it back.
func (r *CampaignRepository) Update(ctx context.Context, id string, patch domain.CampaignPatch) (_ *domain.Campaign, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	current, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrCampaignNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	updated := patch.Apply(current)
	audience, schedule, metrics, err := encodeJSONColumns(updated)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET
    name = $2, platform = $3, objective = $4, objective_text = $5, budget = $6, daily_budget = $7,
    target_audience = $8, schedule = $9, status = $10, metrics = $11, updated_at = $12
WHERE id = $1`,
		id, updated.Name, updated.Platform, updated.Objective, updated.ObjectiveText, updated.Budget, updated.DailyBudget,
		audience, schedule, updated.Status, metrics, updated.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a campaign by id.
func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

func listQuery(filter domain.CampaignFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if filter.Platform != "" && filter.Platform != "all" {
		args = append(args, filter.Platform)
		where = append(where, fmt.Sprintf("platform = $%d", len(args)))
	}
	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	return query + ` ORDER BY created_at DESC`, args
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c                              domain.Campaign
		audienceRaw, scheduleRaw, mRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Platform,
		&c.Objective,
		&c.ObjectiveText,
		&c.Budget,
		&c.DailyBudget,
		&audienceRaw,
		&scheduleRaw,
		&c.Status,
		&mRaw,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if c.TargetAudience, err = decodeJSON[domain.Audience](audienceRaw); err != nil {
		return c, fmt.Errorf("decode target_audience of %s: %w", c.ID, err)
	}
	if c.Schedule, err = decodeJSON[domain.Schedule](scheduleRaw); err != nil {
		return c, fmt.Errorf("decode schedule of %s: %w", c.ID, err)
	}
	if c.Metrics, err = decodeJSON[domain.Metrics](mRaw); err != nil {
		return c, fmt.Errorf("decode metrics of %s: %w", c.ID, err)
	}
	return c, nil
}

func encodeJSONColumns(c domain.Campaign) (audience, schedule, metrics []byte, err error) {
	if audience, err = encodeJSON(c.TargetAudience); err != nil {
		return
	}
	if schedule, err = encodeJSON(c.Schedule); err != nil {
		return
	}
	metrics, err = encodeJSON(c.Metrics)
	return
}

// encodeJSON maps a nil pointer to SQL NULL.
func encodeJSON[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func decodeJSON[T any](raw []byte) (*T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
