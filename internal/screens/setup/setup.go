// Package setup collects the adventure parameters: topic, learner details,
// and difficulty.
package setup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/router"
	"github.com/meghna/questly/internal/screen"
	"github.com/meghna/questly/internal/screens/journey"
	"github.com/meghna/questly/internal/store"
	"github.com/meghna/questly/internal/ui/components"
	"github.com/meghna/questly/internal/ui/layout"
	"github.com/meghna/questly/internal/ui/theme"
)

// Deps carries the services the adventure flow needs.
type Deps struct {
	Content   *content.Service
	Chat      *chat.Service
	Artifacts store.ArtifactRepo
	Events    store.EventRepo
}

const (
	fieldTopic = iota
	fieldDetails
	fieldDifficulty
	fieldCount
)

// SetupScreen walks the learner through the adventure parameters.
type SetupScreen struct {
	deps    Deps
	inputs  [fieldCount]components.TextInput
	focused int
	errMsg  string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(deps Deps) *SetupScreen {
	s := &SetupScreen{deps: deps}
	s.inputs[fieldTopic] = components.NewTextInput("e.g. Python, the French Revolution...", false, 80)
	s.inputs[fieldDetails] = components.NewTextInput("age, interests, how you learn best (optional)", false, 200)
	s.inputs[fieldDifficulty] = components.NewTextInput("1 = easy, 2 = medium, 3 = hard", true, 1)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.inputs[fieldTopic].Init()
}

func (s *SetupScreen) Title() string {
	return "New Adventure"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Tab", Description: "Switch field"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.focused < fieldDifficulty {
				s.focused++
				return s, s.inputs[s.focused].Init()
			}
			return s, s.begin()
		case "tab":
			s.focused = (s.focused + 1) % fieldCount
			return s, s.inputs[s.focused].Init()
		case "shift+tab":
			s.focused = (s.focused + fieldCount - 1) % fieldCount
			return s, s.inputs[s.focused].Init()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

// begin validates the form and pushes the journey screen. Invalid input is
// reported inline and never propagated.
func (s *SetupScreen) begin() tea.Cmd {
	topic := strings.TrimSpace(s.inputs[fieldTopic].Value())
	if topic == "" {
		s.errMsg = "A topic is required."
		s.focused = fieldTopic
		return s.inputs[fieldTopic].Init()
	}

	details := strings.TrimSpace(s.inputs[fieldDetails].Value())
	if details == "" {
		details = content.DefaultUserDetails
	}

	difficulty, err := s.inputs[fieldDifficulty].NumericValue()
	if err != nil || difficulty < 1 || difficulty > 3 {
		s.errMsg = "Difficulty must be 1, 2, or 3."
		s.focused = fieldDifficulty
		return s.inputs[fieldDifficulty].Init()
	}

	s.errMsg = ""
	j := journey.New(journey.Deps{
		Content:   s.deps.Content,
		Chat:      s.deps.Chat,
		Artifacts: s.deps.Artifacts,
		Events:    s.deps.Events,
	}, journey.Params{
		Session:     uuid.New().String(),
		Topic:       topic,
		UserDetails: details,
		Difficulty:  difficulty,
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: j}
	}
}

func (s *SetupScreen) View(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimLabel := lipgloss.NewStyle().Foreground(theme.TextDim)

	label := func(field int, text string) string {
		if field == s.focused {
			return labelStyle.Render("▸ " + text)
		}
		return dimLabel.Render("  " + text)
	}

	var b strings.Builder
	b.WriteString(label(fieldTopic, "What do you want to learn?"))
	b.WriteString("\n  " + s.inputs[fieldTopic].View() + "\n\n")
	b.WriteString(label(fieldDetails, "Tell your teacher about yourself"))
	b.WriteString("\n  " + s.inputs[fieldDetails].View() + "\n\n")
	b.WriteString(label(fieldDifficulty, "Pick a difficulty"))
	b.WriteString("\n  " + s.inputs[fieldDifficulty].View() + "\n")

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
