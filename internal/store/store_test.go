package store

import (
	"context"
	"errors"
	"testing"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/persona"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()

	set := &content.ChapterSet{Chapters: []content.Chapter{
		{Level: 1, Title: "Basics", Description: "d", LearningGoal: "g"},
		{Level: 2, Title: "More", Description: "d", LearningGoal: "g"},
	}}
	if err := repo.PutChapters(ctx, "sess-1", set); err != nil {
		t.Fatalf("put chapters: %v", err)
	}

	got, err := repo.Chapters(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get chapters: %v", err)
	}
	if len(got.Chapters) != 2 || got.Chapters[0].Title != "Basics" {
		t.Errorf("chapters round trip mismatch: %+v", got)
	}
}

func TestArtifactStageNotReady(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()

	_, err := repo.Quest(ctx, "sess-1")
	var notReady *StageNotReadyError
	if !errors.As(err, &notReady) {
		t.Fatalf("error = %v, want *StageNotReadyError", err)
	}
	if notReady.Field != FieldQuest {
		t.Errorf("Field = %q, want %q", notReady.Field, FieldQuest)
	}
}

func TestArtifactPutOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()

	first := persona.DefaultSet()
	if err := repo.PutPersonas(ctx, "sess-1", &first); err != nil {
		t.Fatalf("put personas: %v", err)
	}

	second := persona.DefaultSet()
	second.Teacher1.Name = "Captain Calculus"
	if err := repo.PutPersonas(ctx, "sess-1", &second); err != nil {
		t.Fatalf("overwrite personas: %v", err)
	}

	got, err := repo.Personas(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get personas: %v", err)
	}
	if got.Teacher1.Name != "Captain Calculus" {
		t.Errorf("Teacher1 = %q, want overwritten value", got.Teacher1.Name)
	}

	// Overwrite must leave a single row, not accumulate.
	count, err := s.Client().SessionArtifact.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("artifact rows = %d, want 1", count)
	}
}

func TestArtifactSessionIsolation(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()

	quest := &content.Quest{QuestName: "A", QuestDescription: "d", Questions: []content.Question{
		{Question: "?", Answer: "a", Points: 5, InputType: content.InputText, Difficulty: content.DifficultyEasy},
	}}
	if err := repo.PutQuest(ctx, "sess-1", quest); err != nil {
		t.Fatalf("put quest: %v", err)
	}

	_, err := repo.Quest(ctx, "sess-2")
	var notReady *StageNotReadyError
	if !errors.As(err, &notReady) {
		t.Fatalf("other session saw sess-1's quest: err = %v", err)
	}
}

func TestTranscriptAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.ArtifactRepo()
	ctx := context.Background()

	// Absent transcript reads as empty, not as a missing stage.
	turns, err := repo.Transcript(ctx, "sess-1")
	if err != nil {
		t.Fatalf("transcript (empty): %v", err)
	}
	if len(turns) != 0 {
		t.Fatalf("expected empty transcript, got %d turns", len(turns))
	}

	err = repo.AppendTranscript(ctx, "sess-1",
		chat.Turn{Role: chat.RoleSystem, Content: "seed"},
		chat.Turn{Role: chat.RoleUser, Content: "hi"},
		chat.Turn{Role: chat.RoleAssistant, Content: "hello"},
	)
	if err != nil {
		t.Fatalf("append transcript: %v", err)
	}

	err = repo.AppendTranscript(ctx, "sess-1",
		chat.Turn{Role: chat.RoleUser, Content: "more"},
		chat.Turn{Role: chat.RoleAssistant, Content: "sure"},
	)
	if err != nil {
		t.Fatalf("second append: %v", err)
	}

	turns, err = repo.Transcript(ctx, "sess-1")
	if err != nil {
		t.Fatalf("transcript: %v", err)
	}
	wantRoles := []chat.Role{chat.RoleSystem, chat.RoleUser, chat.RoleAssistant, chat.RoleUser, chat.RoleAssistant}
	if len(turns) != len(wantRoles) {
		t.Fatalf("got %d turns, want %d", len(turns), len(wantRoles))
	}
	for i, r := range wantRoles {
		if turns[i].Role != r {
			t.Errorf("turn %d role = %q, want %q", i, turns[i].Role, r)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"chapter-gen", "quest-gen", "quest-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "openai",
			Model:        "gpt-4o-mini",
			Purpose:      purpose,
			InputTokens:  100 * (i + 1),
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not ordered newest first: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := map[string]LLMUsageStat{}
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	if byPurpose["quest-gen"].Calls != 2 {
		t.Errorf("quest-gen calls = %d, want 2", byPurpose["quest-gen"].Calls)
	}
	if byPurpose["chapter-gen"].InputTokens != 100 {
		t.Errorf("chapter-gen input tokens = %d, want 100", byPurpose["chapter-gen"].InputTokens)
	}
}

func TestAnswerEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AnswerEventData{
		{SessionID: "sess-1", QuestName: "q", QuestionIndex: 0, Attempt: 1, LearnerAnswer: "4", Correct: true, PointsDelta: 10, Score: 10},
		{SessionID: "sess-1", QuestName: "q", QuestionIndex: 1, Attempt: 1, LearnerAnswer: "no", Correct: false, PointsDelta: -2, Score: 8},
		{SessionID: "sess-1", QuestName: "q", QuestionIndex: 1, Attempt: 2, LearnerAnswer: "yes", Correct: true, PointsDelta: 5, Score: 13},
		{SessionID: "other", QuestName: "q", QuestionIndex: 0, Attempt: 1, LearnerAnswer: "x", Correct: false, PointsDelta: 0, Score: 0},
	}
	for i, a := range attempts {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryAnswerEvents(ctx, "sess-1", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Oldest first, and the running score replays correctly.
	if events[2].Score != 13 {
		t.Errorf("final score = %d, want 13", events[2].Score)
	}
	if events[1].Attempt != 1 || events[2].Attempt != 2 {
		t.Errorf("attempt ordering wrong: %+v", events[1:])
	}
}
