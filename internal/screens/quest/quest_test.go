package quest

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/persona"
	runner "github.com/meghna/questly/internal/quest"
	"github.com/meghna/questly/internal/screen"
	"github.com/meghna/questly/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answerEvents []store.AnswerEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryAnswerEvents(_ context.Context, _ string, _ store.QueryOpts) ([]store.AnswerEventRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuest() *content.Quest {
	return &content.Quest{
		QuestName:        "The Loop Labyrinth",
		QuestDescription: "Escape the labyrinth of loops.",
		Questions: []content.Question{
			{
				Question:   "What keyword starts a loop in Python?",
				Answer:     "for",
				Points:     10,
				InputType:  content.InputText,
				Difficulty: content.DifficultyEasy,
				Hint:       "It iterates over a sequence.",
			},
			{
				Question:   "Which of these is a loop?",
				Answer:     "while",
				Points:     10,
				InputType:  content.InputMultipleChoice,
				Options:    []string{"if", "while", "def", "import"},
				Difficulty: content.DifficultyMedium,
			},
		},
	}
}

func testQuestScreen(difficulty int) (*QuestScreen, *mockEventRepo) {
	events := &mockEventRepo{}
	s := New(Deps{Events: events}, Params{
		Session:     "test-session",
		Topic:       "Python",
		UserDetails: "test learner",
		Difficulty:  difficulty,
		Teacher:     persona.DefaultSet().Teacher1,
		Chapter:     content.Chapter{Level: 2, Title: "Loops"},
	})
	return s, events
}

// ready drives the screen out of the loading state with a canned quest.
func ready(t *testing.T, s *QuestScreen) {
	t.Helper()
	scr, _ := s.Update(questReadyMsg{Quest: testQuest()})
	if scr.(*QuestScreen).run == nil {
		t.Fatal("expected runner after questReadyMsg")
	}
}

func TestQuestScreen_Title(t *testing.T) {
	s, _ := testQuestScreen(2)
	if s.Title() != "Quest" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quest")
	}
}

func TestQuestScreen_View_Loading(t *testing.T) {
	s, _ := testQuestScreen(2)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestQuestScreen_View_Error(t *testing.T) {
	s, _ := testQuestScreen(2)
	s.errMsg = "test error"
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for error state")
	}
}

func TestQuestScreen_QuestReady(t *testing.T) {
	s, _ := testQuestScreen(2)
	ready(t, s)

	if s.run.State() != runner.InQuestion {
		t.Errorf("state = %s, want in_question", s.run.State())
	}
	if s.mcActive {
		t.Error("expected text input for the first question")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}

func TestQuestScreen_CorrectAnswer(t *testing.T) {
	s, events := testQuestScreen(2)
	ready(t, s)

	s.input.Model.SetValue("for")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestScreen)

	if !qs.showingFeedback {
		t.Error("expected feedback after submit")
	}
	if !qs.lastOutcome.Correct {
		t.Error("expected a correct outcome")
	}
	if qs.run.Score() != 10 {
		t.Errorf("score = %d, want 10", qs.run.Score())
	}

	if len(events.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answerEvents))
	}
	ev := events.answerEvents[0]
	if !ev.Correct || ev.PointsDelta != 10 || ev.Attempt != 1 {
		t.Errorf("unexpected answer event: %+v", ev)
	}
}

func TestQuestScreen_HintSecondTry(t *testing.T) {
	s, events := testQuestScreen(3)
	ready(t, s)

	// Wrong first answer opens the retry with the hint.
	s.input.Model.SetValue("loop")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuestScreen)

	if !qs.lastOutcome.RetryOpen {
		t.Fatal("expected retry to be open after wrong answer with hint")
	}
	if qs.run.Score() != -2 {
		t.Errorf("score = %d, want -2 at difficulty 3", qs.run.Score())
	}

	// Dismiss feedback, then answer correctly for half points.
	scr, _ = qs.Update(keyPress(' '))
	qs = scr.(*QuestScreen)
	if qs.showingFeedback {
		t.Fatal("expected feedback to be dismissed")
	}

	qs.input.Model.SetValue("FOR")
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuestScreen)

	if !qs.lastOutcome.Correct || !qs.lastOutcome.SecondTry {
		t.Error("expected a correct second-try outcome")
	}
	if qs.run.Score() != 3 {
		t.Errorf("score = %d, want 3 (-2 then +5)", qs.run.Score())
	}
	if len(events.answerEvents) != 2 {
		t.Errorf("answer events = %d, want 2", len(events.answerEvents))
	}
}

func TestQuestScreen_ChatDecisionAdvances(t *testing.T) {
	s, _ := testQuestScreen(2)
	ready(t, s)

	s.input.Model.SetValue("for")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.(*QuestScreen).Update(keyPress(' ')) // dismiss feedback
	qs := scr.(*QuestScreen)

	if qs.run.State() != runner.AwaitingChatDecision {
		t.Fatalf("state = %s, want awaiting_chat_decision", qs.run.State())
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuestScreen)

	if qs.run.State() != runner.InQuestion {
		t.Errorf("state = %s, want in_question", qs.run.State())
	}
	if !qs.mcActive {
		t.Error("expected multiple choice input for the second question")
	}
}

func TestQuestScreen_MultipleChoice(t *testing.T) {
	s, _ := testQuestScreen(2)
	ready(t, s)

	// Resolve the first question and advance to the MC question.
	s.input.Model.SetValue("for")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.(*QuestScreen).Update(keyPress(' '))
	scr, _ = scr.(*QuestScreen).Update(keyPress('n'))
	qs := scr.(*QuestScreen)

	// Press 2 to pick "while".
	scr, _ = qs.Update(keyPress('2'))
	qs = scr.(*QuestScreen)

	if !qs.showingFeedback {
		t.Error("expected feedback after MC answer")
	}
	if !qs.lastOutcome.Correct {
		t.Error("expected choice 2 to be correct")
	}
	if qs.run.Score() != 20 {
		t.Errorf("score = %d, want 20", qs.run.Score())
	}
}

func TestQuestScreen_CompletedView(t *testing.T) {
	s, _ := testQuestScreen(2)
	ready(t, s)

	// Answer both questions correctly and advance past them.
	s.input.Model.SetValue("for")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.(*QuestScreen).Update(keyPress(' '))
	scr, _ = scr.(*QuestScreen).Update(keyPress('n'))
	scr, _ = scr.(*QuestScreen).Update(keyPress('2'))
	scr, _ = scr.(*QuestScreen).Update(keyPress(' '))
	scr, _ = scr.(*QuestScreen).Update(keyPress('n'))
	qs := scr.(*QuestScreen)

	if qs.run.State() != runner.Completed {
		t.Fatalf("state = %s, want completed", qs.run.State())
	}
	if qs.View(80, 24) == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestQuestScreen_QuitConfirm(t *testing.T) {
	s, _ := testQuestScreen(2)
	ready(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuestScreen)
	if !qs.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuestScreen)
	if qs.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = qs.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after quit confirmation")
	}
}

func TestQuestScreen_KeyHints(t *testing.T) {
	s, _ := testQuestScreen(2)
	ready(t, s)

	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
