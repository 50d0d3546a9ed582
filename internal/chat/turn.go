// Package chat runs the free-form conversation with a teacher persona,
// persisting the transcript per session.
package chat

// Role identifies who produced a transcript turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry in a chat transcript. Transcripts are append-only.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
