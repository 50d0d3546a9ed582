// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/meghna/questly/ent/answerevent"
	"github.com/meghna/questly/ent/llmrequestevent"
	"github.com/meghna/questly/ent/schema"
	"github.com/meghna/questly/ent/sessionartifact"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessionartifactFields := schema.SessionArtifact{}.Fields()
	_ = sessionartifactFields
	// sessionartifactDescSessionID is the schema descriptor for session_id field.
	sessionartifactDescSessionID := sessionartifactFields[0].Descriptor()
	// sessionartifact.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionartifact.SessionIDValidator = sessionartifactDescSessionID.Validators[0].(func(string) error)
	// sessionartifactDescField is the schema descriptor for field field.
	sessionartifactDescField := sessionartifactFields[1].Descriptor()
	// sessionartifact.FieldValidator is a validator for the "field" field. It is called by the builders before save.
	sessionartifact.FieldValidator = sessionartifactDescField.Validators[0].(func(string) error)
	// sessionartifactDescUpdatedAt is the schema descriptor for updated_at field.
	sessionartifactDescUpdatedAt := sessionartifactFields[3].Descriptor()
	// sessionartifact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionartifact.DefaultUpdatedAt = sessionartifactDescUpdatedAt.Default.(func() time.Time)
	// sessionartifact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionartifact.UpdateDefaultUpdatedAt = sessionartifactDescUpdatedAt.UpdateDefault.(func() time.Time)
}
