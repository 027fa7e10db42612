package store

import (
	"context"
	"encoding/json"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/certquiz/internal/quiz"
)

// EventRepo appends quiz events to their per-kind tables.
type EventRepo interface {
	// Append stores ev and returns the sequence number it was given.
	Append(ctx context.Context, ev quiz.Event) (int64, error)

	// Counts returns the number of stored events per kind.
	Counts(ctx context.Context) (map[quiz.EventKind]int, error)
}

type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *eventRepo) Append(ctx context.Context, ev quiz.Event) (int64, error) {
	e, ok := eventEntities[ev.Kind]
	if !ok {
		return 0, fmt.Errorf("append event: unknown kind %q", ev.Kind)
	}

	columns, values, err := eventRow(ev)
	if err != nil {
		return 0, fmt.Errorf("append %s event: %w", ev.Kind, err)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return 0, err
	}
	columns = append([]string{"sequence"}, columns...)
	values = append([]any{seq}, values...)

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(e.table).
		Columns(columns...).
		Values(values...).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return 0, fmt.Errorf("append %s event: %w", ev.Kind, err)
	}
	return seq, nil
}

func (r *eventRepo) Counts(ctx context.Context) (map[quiz.EventKind]int, error) {
	counts := make(map[quiz.EventKind]int, len(EventKinds))
	for _, kind := range EventKinds {
		query, args := entsql.Dialect(dialect.SQLite).
			Select(entsql.Count("*")).
			From(entsql.Table(eventEntities[kind].table)).
			Query()

		rows := &entsql.Rows{}
		if err := r.drv.Query(ctx, query, args, rows); err != nil {
			return nil, fmt.Errorf("count %s events: %w", kind, err)
		}
		n, err := entsql.ScanInt(rows)
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("count %s events: %w", kind, err)
		}
		counts[kind] = n
	}
	return counts, nil
}

// eventRow maps ev to the EventMixin columns plus the columns of its kind.
func eventRow(ev quiz.Event) ([]string, []any, error) {
	columns := []string{"timestamp", "run_id", "question_index", "question_id", "score", "total"}
	values := []any{ev.Time.UTC(), ev.RunID, ev.Index, ev.QuestionID, ev.Score, ev.Total}

	selection := func() (string, error) {
		b, err := json.Marshal(ev.Selection)
		if err != nil {
			return "", fmt.Errorf("encode selection: %w", err)
		}
		return string(b), nil
	}

	switch ev.Kind {
	case quiz.EventStart:
		columns = append(columns, "instant_feedback")
		values = append(values, ev.Feedback != nil && *ev.Feedback)
	case quiz.EventSelect, quiz.EventReject:
		sel, err := selection()
		if err != nil {
			return nil, nil, err
		}
		columns = append(columns, "letter", "selection")
		values = append(values, ev.Letter, sel)
		if ev.Kind == quiz.EventReject {
			columns = append(columns, "reason")
			values = append(values, ev.Reason)
		}
	case quiz.EventSubmit:
		sel, err := selection()
		if err != nil {
			return nil, nil, err
		}
		columns = append(columns, "selection", "correct")
		values = append(values, sel, ev.Correct != nil && *ev.Correct)
	}
	return columns, values, nil
}
