package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type captureSink struct {
	events []RequestEvent
}

func (c *captureSink) RecordLLMRequest(_ context.Context, ev RequestEvent) error {
	c.events = append(c.events, ev)
	return nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	sink := &captureSink{}
	p := WithLogging(mock, sink)

	ctx := WithPurpose(context.Background(), "quest-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if !ev.Success {
		t.Error("expected a success event")
	}
	if ev.Purpose != "quest-gen" {
		t.Errorf("purpose = %q, want quest-gen", ev.Purpose)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", ev.InputTokens, ev.OutputTokens)
	}
	if ev.Model != "mock" {
		t.Errorf("model = %q, want mock", ev.Model)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	sink := &captureSink{}
	p := WithLogging(mock, sink)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected the provider error to propagate")
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Success {
		t.Error("expected a failure event")
	}
	if ev.ErrorMessage != "boom" {
		t.Errorf("error message = %q, want boom", ev.ErrorMessage)
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", ev.Purpose)
	}
}
