// Package quest runs the scored question loop for a generated quest.
package quest

import (
	"fmt"
	"strings"

	"github.com/meghna/questly/internal/content"
)

// State is the runner's position in the quest loop.
type State int

const (
	// AwaitingStart means the quest is bound but the learner has not begun.
	AwaitingStart State = iota
	// InQuestion means the current question is waiting for a first answer.
	InQuestion
	// AwaitingSecondTry means the first answer was wrong, the hint has been
	// revealed, and a half-points retry is open.
	AwaitingSecondTry
	// AwaitingChatDecision means the current question is resolved and the
	// front end decides whether to open a chat before moving on.
	AwaitingChatDecision
	// Completed means every question is resolved.
	Completed
)

func (s State) String() string {
	switch s {
	case AwaitingStart:
		return "awaiting_start"
	case InQuestion:
		return "in_question"
	case AwaitingSecondTry:
		return "awaiting_second_try"
	case AwaitingChatDecision:
		return "awaiting_chat_decision"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// penaltyByDifficulty maps session difficulty to the points lost per wrong
// attempt.
var penaltyByDifficulty = map[int]int{1: 0, 2: 1, 3: 2}

// Outcome reports what a Submit did, for the front end to render.
type Outcome struct {
	Correct     bool
	SecondTry   bool // this was the post-hint retry
	RetryOpen   bool // wrong first answer with a hint: retry now open
	Hint        string
	Attempt     int // 1 or 2
	PointsDelta int // signed score movement from this attempt
	Score       int // running score after this attempt
}

// Runner walks a quest's questions, scoring answers. Score is signed and has
// no floor. The runner never opens a chat itself; it parks in
// AwaitingChatDecision and lets the front end decide.
type Runner struct {
	quest   *content.Quest
	penalty int

	state State
	index int
	score int
}

// NewRunner binds a quest and a difficulty (1 easy, 2 medium, 3 hard).
func NewRunner(q *content.Quest, difficulty int) (*Runner, error) {
	penalty, ok := penaltyByDifficulty[difficulty]
	if !ok {
		return nil, fmt.Errorf("difficulty must be 1, 2, or 3, got %d", difficulty)
	}
	if len(q.Questions) == 0 {
		return nil, fmt.Errorf("quest %q has no questions", q.QuestName)
	}
	return &Runner{quest: q, penalty: penalty, state: AwaitingStart}, nil
}

// State returns the current state.
func (r *Runner) State() State { return r.state }

// Score returns the running signed score.
func (r *Runner) Score() int { return r.score }

// Penalty returns the per-wrong-attempt deduction for this run.
func (r *Runner) Penalty() int { return r.penalty }

// QuestionIndex returns the zero-based index of the current question.
func (r *Runner) QuestionIndex() int { return r.index }

// Question returns the current question. Valid in InQuestion,
// AwaitingSecondTry, and AwaitingChatDecision.
func (r *Runner) Question() content.Question {
	return r.quest.Questions[r.index]
}

// Quest returns the bound quest.
func (r *Runner) Quest() *content.Quest { return r.quest }

// Start moves from AwaitingStart into the first question.
func (r *Runner) Start() error {
	if r.state != AwaitingStart {
		return fmt.Errorf("cannot start from state %s", r.state)
	}
	r.state = InQuestion
	return nil
}

// Submit scores an answer for the current question. Matching is
// case-insensitive on the whitespace-trimmed answer.
func (r *Runner) Submit(answer string) (Outcome, error) {
	switch r.state {
	case InQuestion:
		return r.firstAttempt(answer), nil
	case AwaitingSecondTry:
		return r.secondAttempt(answer), nil
	default:
		return Outcome{}, fmt.Errorf("cannot submit an answer in state %s", r.state)
	}
}

func (r *Runner) firstAttempt(answer string) Outcome {
	q := r.Question()
	out := Outcome{Attempt: 1}

	if answersMatch(answer, q.Answer) {
		out.Correct = true
		out.PointsDelta = q.Points
		r.score += q.Points
		r.state = AwaitingChatDecision
	} else {
		out.PointsDelta = -r.penalty
		r.score -= r.penalty
		if q.Hint != "" {
			out.RetryOpen = true
			out.Hint = q.Hint
			r.state = AwaitingSecondTry
		} else {
			r.state = AwaitingChatDecision
		}
	}

	out.Score = r.score
	return out
}

func (r *Runner) secondAttempt(answer string) Outcome {
	q := r.Question()
	out := Outcome{Attempt: 2, SecondTry: true}

	if answersMatch(answer, q.Answer) {
		out.Correct = true
		out.PointsDelta = q.Points / 2
		r.score += q.Points / 2
	} else {
		out.PointsDelta = -r.penalty
		r.score -= r.penalty
	}

	r.state = AwaitingChatDecision
	out.Score = r.score
	return out
}

// Advance moves past the resolved question, into the next one or Completed.
func (r *Runner) Advance() error {
	if r.state != AwaitingChatDecision {
		return fmt.Errorf("cannot advance from state %s", r.state)
	}
	if r.index+1 >= len(r.quest.Questions) {
		r.state = Completed
		return nil
	}
	r.index++
	r.state = InQuestion
	return nil
}

func answersMatch(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}
