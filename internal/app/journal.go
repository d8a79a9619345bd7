// Package app contains the application use cases: the journal of daily
// entries, the day-navigation session, chart windowing and gesture
// recognition.
package app

import (
	"context"
	"log"
	"sort"
	"time"

	"weightlog/internal/domain"
)

// Journal is the in-memory store of daily weight entries, kept sorted
// ascending by day with at most one entry per day. It is the single source
// of truth for what the user recorded; the repository only holds a flat
// snapshot exchanged at load and save boundaries.
type Journal struct {
	repo    domain.EntryRepository
	entries []domain.Entry
	now     func() time.Time
}

// NewJournal creates an empty Journal backed by the given repository.
func NewJournal(repo domain.EntryRepository) *Journal {
	return &Journal{repo: repo, now: time.Now}
}

// Load rebuilds the journal from the repository snapshot. Records without a
// parseable day or a positive weight are dropped; a missing recordedAt
// defaults to the load instant. A repository read failure degrades to an
// empty journal so the app stays usable with zero history.
func (j *Journal) Load(ctx context.Context) {
	j.entries = j.entries[:0]

	records, err := j.repo.Load(ctx)
	if err != nil {
		log.Printf("journal: load failed, starting empty: %v", err)
		return
	}

	loadedAt := j.now()
	seen := make(map[domain.Date]int, len(records))
	for _, rec := range records {
		day, err := domain.ParseDate(rec.Day)
		if err != nil || rec.Weight <= 0 {
			continue
		}
		recordedAt := loadedAt
		if rec.RecordedAt > 0 {
			recordedAt = time.UnixMilli(rec.RecordedAt)
		}
		e := domain.Entry{Day: day, Weight: rec.Weight, RecordedAt: recordedAt}
		if i, ok := seen[day]; ok {
			j.entries[i] = e
			continue
		}
		seen[day] = len(j.entries)
		j.entries = append(j.entries, e)
	}
	j.sort()
}

// Upsert records weight for day, replacing any existing entry for that day,
// and synchronously persists the full snapshot. The returned error is a
// repository write failure; the in-memory entry is kept either way.
func (j *Journal) Upsert(ctx context.Context, day domain.Date, weight float64) error {
	for i := range j.entries {
		if j.entries[i].Day == day {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)
			break
		}
	}
	j.entries = append(j.entries, domain.Entry{Day: day, Weight: weight, RecordedAt: j.now()})
	j.sort()
	return j.persist(ctx)
}

// Find returns the entry for day, if any.
func (j *Journal) Find(day domain.Date) (domain.Entry, bool) {
	for _, e := range j.entries {
		if e.Day == day {
			return e, true
		}
	}
	return domain.Entry{}, false
}

// RecentWindow returns the last n entries by day order, most recent first.
func (j *Journal) RecentWindow(n int) []domain.Entry {
	if n > len(j.entries) {
		n = len(j.entries)
	}
	out := make([]domain.Entry, 0, n)
	for i := len(j.entries) - 1; i >= len(j.entries)-n; i-- {
		out = append(out, j.entries[i])
	}
	return out
}

// Entries returns a copy of all entries, ascending by day.
func (j *Journal) Entries() []domain.Entry {
	out := make([]domain.Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of entries.
func (j *Journal) Len() int { return len(j.entries) }

func (j *Journal) persist(ctx context.Context) error {
	return j.repo.Save(ctx, j.Entries())
}

func (j *Journal) sort() {
	sort.Slice(j.entries, func(a, b int) bool {
		return j.entries[a].Day.Before(j.entries[b].Day)
	})
}
