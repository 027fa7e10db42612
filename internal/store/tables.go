package store

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	entschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/abhisek/certquiz/ent/schema"
	"github.com/abhisek/certquiz/internal/quiz"
)

// entity is the part of an ent schema the store reads to lay out a table.
type entity interface {
	Fields() []ent.Field
	Indexes() []ent.Index
	Mixin() []ent.Mixin
}

// eventEntities maps every event kind to the ent schema of its table.
var eventEntities = map[quiz.EventKind]struct {
	table  string
	entity entity
}{
	quiz.EventStart:   {"start_events", schema.StartEvent{}},
	quiz.EventSelect:  {"select_events", schema.SelectEvent{}},
	quiz.EventReject:  {"reject_events", schema.RejectEvent{}},
	quiz.EventSubmit:  {"submit_events", schema.SubmitEvent{}},
	quiz.EventAdvance: {"advance_events", schema.AdvanceEvent{}},
	quiz.EventFinish:  {"finish_events", schema.FinishEvent{}},
	quiz.EventRestart: {"restart_events", schema.RestartEvent{}},
}

// EventKinds lists the recorded kinds in run order.
var EventKinds = []quiz.EventKind{
	quiz.EventStart,
	quiz.EventSelect,
	quiz.EventReject,
	quiz.EventSubmit,
	quiz.EventAdvance,
	quiz.EventFinish,
	quiz.EventRestart,
}

const sequenceTable = "event_sequence"

// sequenceColumns back the shared counter; see sequenceCounter.
var sequenceColumns = []*entschema.Column{
	{Name: "id", Type: field.TypeInt},
	{Name: "next_val", Type: field.TypeInt64, Default: 1},
}

// Tables returns the migration tables for every event kind plus the
// sequence table.
func Tables() ([]*entschema.Table, error) {
	tables := make([]*entschema.Table, 0, len(EventKinds)+1)
	for _, kind := range EventKinds {
		e := eventEntities[kind]
		t, err := tableFor(e.table, e.entity)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}

	tables = append(tables, &entschema.Table{
		Name:       sequenceTable,
		Columns:    sequenceColumns,
		PrimaryKey: []*entschema.Column{sequenceColumns[0]},
	})
	return tables, nil
}

// tableFor lays out a table the way ent's generated migrations do: an
// auto-increment id, the mixin fields, then the entity's own fields.
func tableFor(name string, e entity) (*entschema.Table, error) {
	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range e.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, e.Fields()...)
	indexes = append(indexes, e.Indexes()...)

	id := &entschema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &entschema.Table{
		Name:       name,
		Columns:    []*entschema.Column{id},
		PrimaryKey: []*entschema.Column{id},
	}

	byName := map[string]*entschema.Column{}
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("table %s: field %s: %w", name, d.Name, d.Err)
		}
		c := &entschema.Column{
			Name:     columnName(d),
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Comment:  d.Comment,
		}
		t.Columns = append(t.Columns, c)
		byName[d.Name] = c
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		cols := make([]*entschema.Column, 0, len(d.Fields))
		for _, f := range d.Fields {
			c, ok := byName[f]
			if !ok {
				return nil, fmt.Errorf("table %s: index on unknown field %q", name, f)
			}
			cols = append(cols, c)
		}
		t.Indexes = append(t.Indexes, &entschema.Index{
			Name:    strings.ReplaceAll(name, "_", "") + "_" + strings.Join(d.Fields, "_"),
			Unique:  d.Unique,
			Columns: cols,
		})
	}
	return t, nil
}

func columnName(d *field.Descriptor) string {
	if d.StorageKey != "" {
		return d.StorageKey
	}
	return d.Name
}
