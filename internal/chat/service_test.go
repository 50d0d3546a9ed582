package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/llm"
	"github.com/meghna/questly/internal/persona"
)

// memTranscriptStore keeps transcripts in memory and can be told to fail.
type memTranscriptStore struct {
	turns     map[string][]Turn
	appendErr error
}

func newMemTranscriptStore() *memTranscriptStore {
	return &memTranscriptStore{turns: make(map[string][]Turn)}
}

func (m *memTranscriptStore) Transcript(_ context.Context, session string) ([]Turn, error) {
	return append([]Turn(nil), m.turns[session]...), nil
}

func (m *memTranscriptStore) AppendTranscript(_ context.Context, session string, turns ...Turn) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.turns[session] = append(m.turns[session], turns...)
	return nil
}

func testInput(text string) SendInput {
	return SendInput{
		Session:     "sess-1",
		Persona:     persona.DefaultSet().Teacher1,
		Topic:       "Python",
		UserDetails: "loves games",
		UserText:    text,
	}
}

func TestSendSeedsSystemTurnOnce(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Welcome, hero!")},
		llm.MockResponse{Content: json.RawMessage("Onward!")},
	)
	store := newMemTranscriptStore()
	svc := NewService(mock, store, DefaultConfig())
	ctx := context.Background()

	reply, err := svc.Send(ctx, testInput("hi"))
	if err != nil {
		t.Fatalf("first send: %v", err)
	}
	if reply != "Welcome, hero!" {
		t.Errorf("reply = %q", reply)
	}

	if _, err := svc.Send(ctx, testInput("what next?")); err != nil {
		t.Fatalf("second send: %v", err)
	}

	turns := store.turns["sess-1"]
	wantRoles := []Role{RoleSystem, RoleUser, RoleAssistant, RoleUser, RoleAssistant}
	if len(turns) != len(wantRoles) {
		t.Fatalf("got %d turns, want %d", len(turns), len(wantRoles))
	}
	for i, r := range wantRoles {
		if turns[i].Role != r {
			t.Errorf("turn %d role = %q, want %q", i, turns[i].Role, r)
		}
	}

	// The seed turn carries the persona and topic.
	if !strings.Contains(turns[0].Content, "The Gamemaster Guide") {
		t.Error("seed turn missing persona description")
	}
	if !strings.Contains(turns[0].Content, "Python") {
		t.Error("seed turn missing topic")
	}
}

func TestSendCarriesHistoryToProvider(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("first")},
		llm.MockResponse{Content: json.RawMessage("second")},
	)
	store := newMemTranscriptStore()
	svc := NewService(mock, store, DefaultConfig())
	ctx := context.Background()

	if _, err := svc.Send(ctx, testInput("one")); err != nil {
		t.Fatalf("send one: %v", err)
	}
	if _, err := svc.Send(ctx, testInput("two")); err != nil {
		t.Fatalf("send two: %v", err)
	}

	second := mock.Calls[1]
	if second.System == "" {
		t.Error("second request lost the system turn")
	}
	if len(second.Messages) != 3 {
		t.Fatalf("second request carried %d messages, want 3 (user, assistant, user)", len(second.Messages))
	}
	if second.Messages[1].Role != llm.RoleAssistant || second.Messages[1].Content != "first" {
		t.Errorf("history assistant turn = %+v", second.Messages[1])
	}
}

func TestSendSeedIncludesQuest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	store := newMemTranscriptStore()
	svc := NewService(mock, store, DefaultConfig())

	in := testInput("help")
	in.Chapter = "Variables"
	in.Quest = &content.Quest{
		QuestName:        "The Vault",
		QuestDescription: "Crack it.",
		Questions: []content.Question{
			{Question: "2+2?", Answer: "4", Points: 5, InputType: content.InputText, Difficulty: content.DifficultyEasy},
		},
	}

	if _, err := svc.Send(context.Background(), in); err != nil {
		t.Fatalf("send: %v", err)
	}

	seed := mock.Calls[0].System
	for _, want := range []string{"Variables", "The Vault", "2+2?"} {
		if !strings.Contains(seed, want) {
			t.Errorf("seed missing %q:\n%s", want, seed)
		}
	}
}

func TestSendProviderFailureLeavesTranscriptUntouched(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("fine")},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	store := newMemTranscriptStore()
	svc := NewService(mock, store, DefaultConfig())
	ctx := context.Background()

	if _, err := svc.Send(ctx, testInput("hi")); err != nil {
		t.Fatalf("first send: %v", err)
	}
	before := len(store.turns["sess-1"])

	_, err := svc.Send(ctx, testInput("again"))
	var genErr *content.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *content.GenerationError", err)
	}

	if got := len(store.turns["sess-1"]); got != before {
		t.Errorf("transcript grew from %d to %d turns on a failed send", before, got)
	}
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, newMemTranscriptStore(), DefaultConfig())

	if _, err := svc.Send(context.Background(), testInput("   ")); err == nil {
		t.Fatal("blank message accepted")
	}
	if mock.CallCount() != 0 {
		t.Error("provider called for a blank message")
	}
}
