// Package diskv implements the entry repository on a local diskv store,
// one JSON blob per day.
package diskv

import (
	"context"
	"encoding/json"
	"log"

	"github.com/peterbourgon/diskv/v3"

	"weightlog/internal/domain"
)

// Repo persists the journal snapshot under a base path. Keys are the
// YYYY-MM-DD day strings; values are JSON entry records. Save rewrites the
// snapshot and erases keys for days no longer present.
type Repo struct {
	d *diskv.Diskv
}

var _ domain.EntryRepository = (*Repo)(nil)

// New creates a Repo rooted at basePath.
func New(basePath string) *Repo {
	return &Repo{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

// Load reads every stored blob. Unreadable or unparseable blobs are skipped
// with a log line; the journal applies its own validation on top.
func (r *Repo) Load(ctx context.Context) ([]domain.EntryRecord, error) {
	var records []domain.EntryRecord
	for key := range r.d.Keys(ctx.Done()) {
		raw, err := r.d.Read(key)
		if err != nil {
			log.Printf("diskv: read %s: %v", key, err)
			continue
		}
		var rec domain.EntryRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Printf("diskv: decode %s: %v", key, err)
			continue
		}
		if rec.Day == "" {
			rec.Day = key
		}
		records = append(records, rec)
	}
	return records, ctx.Err()
}

// Save writes one blob per entry and erases blobs for days that left the
// snapshot.
func (r *Repo) Save(ctx context.Context, entries []domain.Entry) error {
	keep := make(map[string]bool, len(entries))
	for _, e := range entries {
		rec := e.Record()
		keep[rec.Day] = true

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := r.d.Write(rec.Day, data); err != nil {
			return err
		}
	}

	for key := range r.d.Keys(ctx.Done()) {
		if keep[key] {
			continue
		}
		if err := r.d.Erase(key); err != nil {
			return err
		}
	}
	return ctx.Err()
}
