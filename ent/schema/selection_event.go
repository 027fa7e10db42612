package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SelectEvent records an accepted option pick.
type SelectEvent struct {
	ent.Schema
}

func (SelectEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SelectEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("letter").
			NotEmpty().
			Comment("Option key that was picked"),
		field.Strings("selection").
			Optional().
			Comment("Selection after the pick, in pick order"),
	}
}

// RejectEvent records a pick refused by the selection limit.
type RejectEvent struct {
	ent.Schema
}

func (RejectEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RejectEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("letter").
			NotEmpty().
			Comment("Option key that was refused"),
		field.Strings("selection").
			Optional().
			Comment("Selection left unchanged by the refusal"),
		field.String("reason").
			Comment("Why the pick was refused"),
	}
}

// SubmitEvent records a graded answer.
type SubmitEvent struct {
	ent.Schema
}

func (SubmitEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmitEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Strings("selection").
			Optional().
			Comment("Submitted option keys"),
		field.Bool("correct").
			Comment("Whether the answer matched the key"),
	}
}

func (SubmitEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("correct"),
	}
}
