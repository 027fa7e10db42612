package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin provides the base fields shared by all event types.
// Every event entity includes this mixin to get consistent sequence
// numbering, timestamping and the run position the event happened at.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Unique().
			Immutable().
			Comment("Monotonically increasing global sequence number"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the event"),
		field.String("run_id").
			Comment("UUID grouping the events of one quiz run"),
		field.Int("question_index").
			Comment("Zero-based position in the bank"),
		field.String("question_id").
			Optional().
			Comment("Bank id of the current question, empty outside a run"),
		field.Int("score").
			Comment("Running score when the event happened"),
		field.Int("total").
			Comment("Number of questions in the bank"),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sequence"),
		index.Fields("timestamp"),
		index.Fields("run_id"),
	}
}
