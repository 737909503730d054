// Package filestore keeps campaigns in a single JSON document on disk. It
// suits local development and the demo dashboard.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

type document struct {
	Campaigns []domain.Campaign `json:"campaigns"`
}

// CampaignRepository implements port.CampaignRepository over a JSON file
// of the form {"campaigns": [...]}, newest first. A missing file reads as
// an empty list.
type CampaignRepository struct {
	mu   sync.Mutex
	path string
}

// NewCampaignRepository returns a repository backed by the file at path.
// Parent directories are created on first write.
func NewCampaignRepository(path string) *CampaignRepository {
	return &CampaignRepository{path: path}
}

// List returns the campaigns matching filter, newest first.
func (r *CampaignRepository) List(_ context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(doc.Campaigns))
	for _, c := range doc.Campaigns {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get returns the campaign with the given id or port.ErrCampaignNotFound.
func (r *CampaignRepository) Get(_ context.Context, id string) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	i := index(doc.Campaigns, id)
	if i < 0 {
		return nil, port.ErrCampaignNotFound
	}
	c := doc.Campaigns[i]
	return &c, nil
}

// Append inserts c ahead of every campaign created at or before it, so the
// list stays newest first whatever order campaigns arrive in.
func (r *CampaignRepository) Append(_ context.Context, c domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}
	if index(doc.Campaigns, c.ID) >= 0 {
		return fmt.Errorf("campaign %s already exists", c.ID)
	}
	at := slices.IndexFunc(doc.Campaigns, func(existing domain.Campaign) bool {
		return !existing.CreatedAt.After(c.CreatedAt)
	})
	if at < 0 {
		at = len(doc.Campaigns)
	}
	doc.Campaigns = slices.Insert(doc.Campaigns, at, c)
	return r.write(doc)
}

// Update applies patch to the stored campaign and returns the result.
func (r *CampaignRepository) Update(_ context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	i := index(doc.Campaigns, id)
	if i < 0 {
		return nil, port.ErrCampaignNotFound
	}
	updated := patch.Apply(doc.Campaigns[i])
	doc.Campaigns[i] = updated
	if err = r.write(doc); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the campaign with the given id.
func (r *CampaignRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return err
	}
	i := index(doc.Campaigns, id)
	if i < 0 {
		return port.ErrCampaignNotFound
	}
	doc.Campaigns = slices.Delete(doc.Campaigns, i, i+1)
	return r.write(doc)
}

func (r *CampaignRepository) read() (document, error) {
	var doc document
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, err
	}
	if err = json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return doc, nil
}

// write replaces the file atomically through a temp file and rename.
func (r *CampaignRepository) write(doc document) error {
	if doc.Campaigns == nil {
		doc.Campaigns = []domain.Campaign{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

func index(campaigns []domain.Campaign, id string) int {
	return slices.IndexFunc(campaigns, func(c domain.Campaign) bool { return c.ID == id })
}
