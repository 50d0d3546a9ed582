package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var answerSchema = &Schema{
	Name:        "test-answer",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"points": map[string]any{"type": "integer"},
		},
		"required":             []any{"answer", "points"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"answer":"4","points":10}`, false},
		{"missing required", `{"answer":"4"}`, true},
		{"wrong type", `{"answer":"4","points":"ten"}`, true},
		{"extra property", `{"answer":"4","points":10,"bonus":1}`, true},
		{"not JSON", `not json at all`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(answerSchema, json.RawMessage(tt.raw))
			if tt.wantErr {
				var invalid *ErrInvalidResponse
				if !errors.As(err, &invalid) {
					t.Fatalf("error = %v, want *ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateResponse: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestCompiledSchemaCaches(t *testing.T) {
	first, err := compiledSchema(answerSchema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := compiledSchema(answerSchema)
	if err != nil {
		t.Fatalf("recompile: %v", err)
	}
	if first != second {
		t.Error("schema was recompiled instead of served from cache")
	}
}
