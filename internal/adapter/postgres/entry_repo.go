package postgres

import (
	"context"
	"fmt"
	"time"

	"weightlog/internal/domain"
)

var _ domain.EntryRepository = (*DB)(nil)

// Load returns the full stored snapshot, ascending by day.
func (d *DB) Load(ctx context.Context) ([]domain.EntryRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT day, weight, recorded_at FROM weight_days ORDER BY day;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.EntryRecord
	for rows.Next() {
		var rec domain.EntryRecord
		var recordedAt time.Time
		if err := rows.Scan(&rec.Day, &rec.Weight, &recordedAt); err != nil {
			return nil, err
		}
		rec.RecordedAt = recordedAt.UnixMilli()
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Save replaces the stored snapshot in a single transaction, so a failed
// write never leaves a half-written journal behind.
func (d *DB) Save(ctx context.Context, entries []domain.Entry) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM weight_days;"); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO weight_days(day, weight, recorded_at) VALUES($1, $2, $3);",
			e.Day.String(), e.Weight, e.RecordedAt.UTC(),
		); err != nil {
			return fmt.Errorf("save %s: %w", e.Day, err)
		}
	}
	return tx.Commit()
}
