package domain

import (
	"context"
	"time"
)

// Entry is a single body-weight measurement, at most one per calendar day.
type Entry struct {
	Day        Date      `json:"day"`
	Weight     float64   `json:"weight"`
	RecordedAt time.Time `json:"recordedAt"`
}

// EntryRecord is the flat persisted shape of an Entry, before validation.
// RecordedAt is unix milliseconds; zero or negative means unknown.
type EntryRecord struct {
	Day        string  `json:"day"`
	Weight     float64 `json:"weight"`
	RecordedAt int64   `json:"recordedAt"`
}

// Record converts e to its persisted shape.
func (e Entry) Record() EntryRecord {
	return EntryRecord{
		Day:        e.Day.String(),
		Weight:     e.Weight,
		RecordedAt: e.RecordedAt.UnixMilli(),
	}
}

// EntryRepository is the port for journal persistence. Load returns the raw
// snapshot as stored; callers are expected to filter malformed records. Save
// replaces the stored snapshot wholesale. Day uniqueness is enforced by the
// journal, not by the storage medium.
type EntryRepository interface {
	Load(ctx context.Context) ([]EntryRecord, error)
	Save(ctx context.Context, entries []Entry) error
}
