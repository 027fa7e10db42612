package store

import (
	"context"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out the global sequence number shared by all event
// tables. Per-table auto-increment ids can't order events of different
// kinds, so every event takes its sequence from this single row. The
// mutex serializes within the process; RETURNING makes the increment
// atomic at the database level.
type sequenceCounter struct {
	mu  sync.Mutex
	drv dialect.Driver
}

// newSequenceCounter seeds the counter row if the table is new.
func newSequenceCounter(ctx context.Context, drv dialect.Driver) (*sequenceCounter, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sequenceTable).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.DoNothing()).
		Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	query, args := entsql.Dialect(dialect.SQLite).
		Update(sequenceTable).
		Add("next_val", 1).
		Where(entsql.EQ("id", 1)).
		Returning("next_val").
		Query()

	rows := &entsql.Rows{}
	if err := sc.drv.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	next, err := entsql.ScanInt64(rows)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next - 1, nil
}
