package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StartEvent records the start of a run.
type StartEvent struct {
	ent.Schema
}

func (StartEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StartEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Bool("instant_feedback").
			Comment("Feedback preference fixed for the run"),
	}
}

// AdvanceEvent records moving past an answered question.
type AdvanceEvent struct {
	ent.Schema
}

func (AdvanceEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// FinishEvent records advancing past the last question.
type FinishEvent struct {
	ent.Schema
}

func (FinishEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// RestartEvent records a run being discarded. run_id is the discarded run.
type RestartEvent struct {
	ent.Schema
}

func (RestartEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}
