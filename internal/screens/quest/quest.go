// Package quest is the interactive quest screen: it generates the quest for
// the chosen chapter and runs the scored question loop.
package quest

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/persona"
	runner "github.com/meghna/questly/internal/quest"
	"github.com/meghna/questly/internal/router"
	"github.com/meghna/questly/internal/screen"
	"github.com/meghna/questly/internal/screens/chatscreen"
	"github.com/meghna/questly/internal/store"
	"github.com/meghna/questly/internal/ui/components"
	"github.com/meghna/questly/internal/ui/layout"
)

// Deps carries the services the quest loop needs.
type Deps struct {
	Content   *content.Service
	Chat      *chat.Service
	Artifacts store.ArtifactRepo
	Events    store.EventRepo
}

// Params identifies the quest to generate and run.
type Params struct {
	Session     string
	Topic       string
	UserDetails string
	Difficulty  int
	Teacher     persona.Descriptor
	Chapter     content.Chapter
}

// QuestScreen implements screen.Screen for an active quest run.
type QuestScreen struct {
	deps   Deps
	params Params

	loading    components.Loading
	run        *runner.Runner
	input      components.TextInput
	mcActive   bool // true when showing multiple choice
	mcSelected int

	lastOutcome        *runner.Outcome
	showingFeedback    bool
	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*QuestScreen)(nil)
var _ screen.KeyHintProvider = (*QuestScreen)(nil)
var _ screen.StatusProvider = (*QuestScreen)(nil)
var _ screen.EscHandler = (*QuestScreen)(nil)

// New creates a new QuestScreen.
func New(deps Deps, params Params) *QuestScreen {
	return &QuestScreen{
		deps:    deps,
		params:  params,
		loading: components.NewLoading(fmt.Sprintf("%s is preparing your quest...", params.Teacher.Name)),
	}
}

func (s *QuestScreen) Init() tea.Cmd {
	return tea.Batch(s.loading.Init(), s.generateQuest())
}

func (s *QuestScreen) Title() string {
	return "Quest"
}

func (s *QuestScreen) Status() string {
	if s.run == nil {
		return s.params.Topic
	}
	return fmt.Sprintf("%s  ✦ %d pts", s.params.Topic, s.run.Score())
}

// HandlesEsc confines quitting to the quit-confirm dialog while a question
// is live.
func (s *QuestScreen) HandlesEsc() bool {
	return s.errMsg == "" && s.run != nil && s.run.State() != runner.Completed
}

func (s *QuestScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quest"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.run == nil {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	switch s.run.State() {
	case runner.AwaitingChatDecision:
		return []layout.KeyHint{
			{Key: "Y", Description: "Chat with teacher"},
			{Key: "N", Description: "Next question"},
		}
	case runner.Completed:
		return []layout.KeyHint{
			{Key: "C", Description: "Chat with teacher"},
			{Key: "Enter", Description: "Back to chapters"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questReadyMsg:
		return s.handleQuestReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.run == nil && s.errMsg == "" {
		var cmd tea.Cmd
		s.loading, cmd = s.loading.Update(msg)
		return s, cmd
	}

	if s.answerInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// generateQuest generates and stores the quest asynchronously.
func (s *QuestScreen) generateQuest() tea.Cmd {
	deps, p := s.deps, s.params
	return func() tea.Msg {
		ctx := context.Background()

		quest, err := deps.Content.GenerateQuest(ctx, p.Topic, p.Teacher, p.Chapter.Title, p.Chapter.Level, p.UserDetails)
		if err != nil {
			return questReadyMsg{Err: err}
		}
		if err := deps.Artifacts.PutQuest(ctx, p.Session, quest); err != nil {
			return questReadyMsg{Err: err}
		}
		return questReadyMsg{Quest: quest}
	}
}

func (s *QuestScreen) handleQuestReady(msg questReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	run, err := runner.NewRunner(msg.Quest, s.params.Difficulty)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if err := run.Start(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.run = run
	return s, s.setupAnswerInput()
}

// setupAnswerInput prepares the input widget for the current question.
func (s *QuestScreen) setupAnswerInput() tea.Cmd {
	q := s.run.Question()
	if q.InputType == content.InputMultipleChoice && len(q.Options) > 0 {
		s.mcActive = true
		s.mcSelected = 0
		return nil
	}
	s.mcActive = false
	s.input = components.NewTextInput("Type your answer...", false, 120)
	return s.input.Init()
}

func (s *QuestScreen) answerInputActive() bool {
	if s.run == nil || s.mcActive || s.showingFeedback || s.showingQuitConfirm {
		return false
	}
	st := s.run.State()
	return st == runner.InQuestion || st == runner.AwaitingSecondTry
}

func (s *QuestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.run == nil {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay: any key dismisses.
	if s.showingFeedback {
		s.showingFeedback = false
		if s.lastOutcome != nil && s.lastOutcome.RetryOpen {
			// Second try: fresh input, hint now on screen.
			return s, s.setupAnswerInput()
		}
		return s, nil
	}

	switch s.run.State() {
	case runner.InQuestion, runner.AwaitingSecondTry:
		switch key {
		case "esc":
			s.showingQuitConfirm = true
			return s, nil
		case "enter":
			return s.submitAnswer()
		}

		// Multiple choice: number keys and arrows.
		if s.mcActive {
			q := s.run.Question()
			switch key {
			case "1", "2", "3", "4", "5", "6":
				idx := int(key[0] - '1')
				if idx < len(q.Options) {
					s.mcSelected = idx
					return s.submitAnswer()
				}
			case "up", "k":
				if s.mcSelected > 0 {
					s.mcSelected--
				}
				return s, nil
			case "down", "j":
				if s.mcSelected < len(q.Options)-1 {
					s.mcSelected++
				}
				return s, nil
			}
			return s, nil
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case runner.AwaitingChatDecision:
		switch key {
		case "y", "Y":
			return s, s.openChat()
		case "n", "N", "enter":
			if err := s.run.Advance(); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			if s.run.State() == runner.Completed {
				return s, nil
			}
			return s, s.setupAnswerInput()
		}
		return s, nil

	case runner.Completed:
		switch key {
		case "c", "C":
			return s, s.openChat()
		case "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	return s, nil
}

// submitAnswer scores the current answer and records the attempt.
func (s *QuestScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.run.Question()

	var answer string
	if s.mcActive {
		if s.mcSelected >= 0 && s.mcSelected < len(q.Options) {
			answer = q.Options[s.mcSelected]
		}
	} else {
		answer = s.input.Value()
		if answer == "" {
			return s, nil
		}
	}

	out, err := s.run.Submit(answer)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.lastOutcome = &out

	// Event logging never blocks the loop.
	_ = s.deps.Events.AppendAnswer(context.Background(), store.AnswerEventData{
		SessionID:     s.params.Session,
		QuestName:     s.run.Quest().QuestName,
		QuestionIndex: s.run.QuestionIndex(),
		Attempt:       out.Attempt,
		LearnerAnswer: answer,
		Correct:       out.Correct,
		PointsDelta:   out.PointsDelta,
		Score:         out.Score,
	})

	s.showingFeedback = true
	return s, nil
}

// openChat pushes the persona chat overlay grounded in this quest.
func (s *QuestScreen) openChat() tea.Cmd {
	c := chatscreen.New(s.deps.Chat, chatscreen.Params{
		Session:     s.params.Session,
		Teacher:     s.params.Teacher,
		Topic:       s.params.Topic,
		UserDetails: s.params.UserDetails,
		Chapter:     s.params.Chapter.Title,
		Quest:       s.run.Quest(),
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: c}
	}
}
