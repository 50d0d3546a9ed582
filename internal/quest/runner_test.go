package quest

import (
	"testing"

	"github.com/meghna/questly/internal/content"
)

func twoQuestionQuest() *content.Quest {
	return &content.Quest{
		QuestName:        "Test Quest",
		QuestDescription: "d",
		Questions: []content.Question{
			{Question: "2+2?", Answer: "4", Points: 10, InputType: content.InputText, Difficulty: content.DifficultyEasy, Hint: "count on your fingers"},
			{Question: "Capital of France?", Answer: "Paris", Points: 7, InputType: content.InputText, Difficulty: content.DifficultyMedium},
		},
	}
}

func startedRunner(t *testing.T, difficulty int) *Runner {
	t.Helper()
	r, err := NewRunner(twoQuestionQuest(), difficulty)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return r
}

func TestNewRunnerValidation(t *testing.T) {
	if _, err := NewRunner(twoQuestionQuest(), 4); err == nil {
		t.Error("difficulty 4 accepted")
	}
	if _, err := NewRunner(&content.Quest{QuestName: "empty"}, 1); err == nil {
		t.Error("empty quest accepted")
	}
}

func TestDifficultyPenalties(t *testing.T) {
	tests := []struct {
		difficulty  int
		wantPenalty int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
	}
	for _, tt := range tests {
		r, err := NewRunner(twoQuestionQuest(), tt.difficulty)
		if err != nil {
			t.Fatalf("NewRunner(%d): %v", tt.difficulty, err)
		}
		if r.Penalty() != tt.wantPenalty {
			t.Errorf("difficulty %d penalty = %d, want %d", tt.difficulty, r.Penalty(), tt.wantPenalty)
		}
	}
}

func TestCorrectFirstTry(t *testing.T) {
	r := startedRunner(t, 3)

	out, err := r.Submit("4")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Correct || out.Attempt != 1 {
		t.Errorf("outcome = %+v, want correct first attempt", out)
	}
	if out.PointsDelta != 10 || r.Score() != 10 {
		t.Errorf("delta %d score %d, want 10/10", out.PointsDelta, r.Score())
	}
	if r.State() != AwaitingChatDecision {
		t.Errorf("state = %s, want awaiting_chat_decision", r.State())
	}
}

func TestAnswerMatchingIsForgiving(t *testing.T) {
	r := startedRunner(t, 3)

	out, err := r.Submit("  4  ")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Correct {
		t.Error("whitespace-padded answer rejected")
	}
	if err := r.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	out, err = r.Submit("pArIs")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !out.Correct {
		t.Error("case-insensitive answer rejected")
	}
}

func TestWrongWithHintOpensRetry(t *testing.T) {
	r := startedRunner(t, 3)

	out, err := r.Submit("5")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.Correct {
		t.Fatal("wrong answer scored as correct")
	}
	if !out.RetryOpen || out.Hint != "count on your fingers" {
		t.Errorf("outcome = %+v, want open retry with hint", out)
	}
	if out.PointsDelta != -2 || r.Score() != -2 {
		t.Errorf("delta %d score %d, want -2/-2", out.PointsDelta, r.Score())
	}
	if r.State() != AwaitingSecondTry {
		t.Errorf("state = %s, want awaiting_second_try", r.State())
	}
}

func TestSecondTryCorrectHalvesPoints(t *testing.T) {
	r := startedRunner(t, 3)

	if _, err := r.Submit("5"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	out, err := r.Submit("4")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if !out.Correct || !out.SecondTry || out.Attempt != 2 {
		t.Errorf("outcome = %+v, want correct second try", out)
	}
	// Integer half of 10 on top of the -2 penalty.
	if out.PointsDelta != 5 || r.Score() != 3 {
		t.Errorf("delta %d score %d, want 5/3", out.PointsDelta, r.Score())
	}
	if r.State() != AwaitingChatDecision {
		t.Errorf("state = %s, want awaiting_chat_decision", r.State())
	}
}

func TestTwoWrongAttemptsDeductTwice(t *testing.T) {
	r := startedRunner(t, 3)

	if _, err := r.Submit("5"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	out, err := r.Submit("6")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if out.Correct {
		t.Fatal("wrong retry scored as correct")
	}
	// Penalty 2 applied on both attempts: score drops by exactly 4.
	if r.Score() != -4 {
		t.Errorf("score = %d, want -4", r.Score())
	}
}

func TestWrongWithoutHintResolvesImmediately(t *testing.T) {
	r := startedRunner(t, 2)

	if _, err := r.Submit("4"); err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	if err := r.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}

	// Question 2 has no hint: a wrong answer goes straight to resolution.
	out, err := r.Submit("London")
	if err != nil {
		t.Fatalf("submit q2: %v", err)
	}
	if out.RetryOpen {
		t.Error("retry opened for a question without a hint")
	}
	if r.State() != AwaitingChatDecision {
		t.Errorf("state = %s, want awaiting_chat_decision", r.State())
	}
	if out.PointsDelta != -1 {
		t.Errorf("delta = %d, want -1 at difficulty 2", out.PointsDelta)
	}
}

func TestEasyDifficultyNeverDeducts(t *testing.T) {
	r := startedRunner(t, 1)

	if _, err := r.Submit("wrong"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := r.Submit("also wrong"); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if r.Score() != 0 {
		t.Errorf("score = %d, want 0 at difficulty 1", r.Score())
	}
}

func TestAdvanceThroughToCompleted(t *testing.T) {
	r := startedRunner(t, 1)

	if _, err := r.Submit("4"); err != nil {
		t.Fatalf("submit q1: %v", err)
	}
	if err := r.Advance(); err != nil {
		t.Fatalf("advance to q2: %v", err)
	}
	if r.QuestionIndex() != 1 || r.State() != InQuestion {
		t.Fatalf("index %d state %s, want 1/in_question", r.QuestionIndex(), r.State())
	}

	if _, err := r.Submit("Paris"); err != nil {
		t.Fatalf("submit q2: %v", err)
	}
	if err := r.Advance(); err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if r.State() != Completed {
		t.Errorf("state = %s, want completed", r.State())
	}
	if r.Score() != 17 {
		t.Errorf("final score = %d, want 17", r.Score())
	}
}

func TestInvalidTransitions(t *testing.T) {
	r, err := NewRunner(twoQuestionQuest(), 1)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	if _, err := r.Submit("4"); err == nil {
		t.Error("Submit before Start accepted")
	}
	if err := r.Advance(); err == nil {
		t.Error("Advance before Start accepted")
	}
	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Start(); err == nil {
		t.Error("double Start accepted")
	}
	if err := r.Advance(); err == nil {
		t.Error("Advance mid-question accepted")
	}
}
