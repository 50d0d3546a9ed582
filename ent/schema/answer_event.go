package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answer attempt inside a quest run, including
// the score movement it caused. Two rows appear for a question when the
// learner uses the hint-backed second try.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Learning session the quest run belongs to"),
		field.String("quest_name"),
		field.Int("question_index").
			Comment("Zero-based index into the quest's question list"),
		field.Int("attempt").
			Comment("1 for the first answer, 2 for the post-hint retry"),
		field.String("learner_answer"),
		field.Bool("correct"),
		field.Int("points_delta").
			Comment("Signed score movement caused by this attempt"),
		field.Int("score").
			Comment("Running score after the attempt"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
