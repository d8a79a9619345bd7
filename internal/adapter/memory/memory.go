// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"

	"weightlog/internal/domain"
)

// Repo is an in-memory entry repository. It stores the flat snapshot the
// journal exchanges at load/save boundaries and nothing else.
type Repo struct {
	mu      sync.Mutex
	records []domain.EntryRecord
}

// Ensure the interface is met.
var _ domain.EntryRepository = (*Repo)(nil)

// New creates an empty in-memory repository.
func New() *Repo {
	return &Repo{}
}

// Seed replaces the stored snapshot with raw records, for tests that need
// to exercise malformed data.
func (r *Repo) Seed(records []domain.EntryRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records[:0], records...)
}

// Load returns a copy of the stored snapshot.
func (r *Repo) Load(ctx context.Context) ([]domain.EntryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.EntryRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Save replaces the stored snapshot.
func (r *Repo) Save(ctx context.Context, entries []domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = r.records[:0]
	for _, e := range entries {
		r.records = append(r.records, e.Record())
	}
	return nil
}
