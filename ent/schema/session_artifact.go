package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionArtifact is one pipeline artifact for one learning session.
// Each session owns at most one row per field (chapters, personas, quest,
// chat_transcript); row presence is what marks a stage as completed.
type SessionArtifact struct {
	ent.Schema
}

func (SessionArtifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Learning session identity"),
		field.String("field").
			NotEmpty().
			Comment("Artifact name: chapters, personas, quest, chat_transcript"),
		field.JSON("payload", json.RawMessage(nil)).
			Comment("Artifact body as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last overwrite time"),
	}
}

func (SessionArtifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "field").Unique(),
	}
}
