// Package journey generates the chapter progression and teacher personas for
// a topic and lets the learner pick both.
package journey

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/persona"
	"github.com/meghna/questly/internal/router"
	"github.com/meghna/questly/internal/screen"
	questscreen "github.com/meghna/questly/internal/screens/quest"
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

// Params is the adventure setup chosen by the learner.
type Params struct {
	Session     string
	Topic       string
	UserDetails string
	Difficulty  int
}

type phase int

const (
	phaseLoading phase = iota
	phasePersonaPick
	phaseChapterPick
)

// journeyReadyMsg is sent when chapters and personas have been generated
// and stored.
type journeyReadyMsg struct {
	Chapters *content.ChapterSet
	Personas *persona.Set
	Err      error
}

// JourneyScreen drives persona and chapter selection.
type JourneyScreen struct {
	deps   Deps
	params Params

	phase    phase
	loading  components.Loading
	chapters *content.ChapterSet
	teacher  persona.Descriptor

	personaMenu components.Menu
	chapterMenu components.Menu
	errMsg      string
}

var _ screen.Screen = (*JourneyScreen)(nil)
var _ screen.StatusProvider = (*JourneyScreen)(nil)
var _ screen.KeyHintProvider = (*JourneyScreen)(nil)
var _ screen.EscHandler = (*JourneyScreen)(nil)

// HandlesEsc keeps esc on the chapter menu as "back to teacher pick" rather
// than popping the whole journey.
func (j *JourneyScreen) HandlesEsc() bool {
	return j.phase == phaseChapterPick
}

// New creates a new JourneyScreen.
func New(deps Deps, params Params) *JourneyScreen {
	return &JourneyScreen{
		deps:    deps,
		params:  params,
		loading: components.NewLoading(fmt.Sprintf("Charting your %s adventure...", params.Topic)),
	}
}

func (j *JourneyScreen) Init() tea.Cmd {
	return tea.Batch(j.loading.Init(), j.generateJourney())
}

func (j *JourneyScreen) Title() string {
	return "Journey"
}

func (j *JourneyScreen) Status() string {
	return j.params.Topic
}

func (j *JourneyScreen) KeyHints() []layout.KeyHint {
	if j.phase == phaseLoading {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// generateJourney runs both generation stages and persists the artifacts.
func (j *JourneyScreen) generateJourney() tea.Cmd {
	deps, p := j.deps, j.params
	return func() tea.Msg {
		ctx := context.Background()

		chapters, err := deps.Content.GenerateChapters(ctx, p.Topic, p.UserDetails)
		if err != nil {
			return journeyReadyMsg{Err: err}
		}
		if err := deps.Artifacts.PutChapters(ctx, p.Session, chapters); err != nil {
			return journeyReadyMsg{Err: err}
		}

		personas, err := deps.Content.GeneratePersonas(ctx, p.Topic, p.UserDetails)
		if err != nil {
			return journeyReadyMsg{Err: err}
		}
		if err := deps.Artifacts.PutPersonas(ctx, p.Session, personas); err != nil {
			return journeyReadyMsg{Err: err}
		}

		return journeyReadyMsg{Chapters: chapters, Personas: personas}
	}
}

func (j *JourneyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case journeyReadyMsg:
		if msg.Err != nil {
			j.errMsg = msg.Err.Error()
			return j, nil
		}
		j.chapters = msg.Chapters
		j.personaMenu = j.buildPersonaMenu(msg.Personas)
		j.phase = phasePersonaPick
		return j, nil

	case tea.KeyMsg:
		if j.errMsg != "" {
			return j, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if msg.String() == "esc" && j.phase == phaseChapterPick {
			j.phase = phasePersonaPick
			return j, nil
		}
	}

	switch j.phase {
	case phaseLoading:
		var cmd tea.Cmd
		j.loading, cmd = j.loading.Update(msg)
		return j, cmd
	case phasePersonaPick:
		var cmd tea.Cmd
		j.personaMenu, cmd = j.personaMenu.Update(msg)
		return j, cmd
	case phaseChapterPick:
		var cmd tea.Cmd
		j.chapterMenu, cmd = j.chapterMenu.Update(msg)
		return j, cmd
	}
	return j, nil
}

func (j *JourneyScreen) buildPersonaMenu(set *persona.Set) components.Menu {
	catalog := persona.NewCatalog(*set)
	entries := catalog.List()

	items := make([]components.MenuItem, 0, len(entries))
	for _, e := range entries {
		teacher := e.Descriptor
		items = append(items, components.MenuItem{
			Label:  teacher.Name,
			Detail: teacher.ExampleBehavior.Introduction,
			Action: func() tea.Cmd {
				j.teacher = teacher
				j.chapterMenu = j.buildChapterMenu()
				j.phase = phaseChapterPick
				return nil
			},
		})
	}
	return components.NewMenu(items)
}

func (j *JourneyScreen) buildChapterMenu() components.Menu {
	items := make([]components.MenuItem, 0, len(j.chapters.Chapters))
	for _, ch := range j.chapters.Chapters {
		chapter := ch
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("Level %d: %s", chapter.Level, chapter.Title),
			Detail: chapter.Description,
			Action: func() tea.Cmd {
				q := questscreen.New(questscreen.Deps{
					Content:   j.deps.Content,
					Chat:      j.deps.Chat,
					Artifacts: j.deps.Artifacts,
					Events:    j.deps.Events,
				}, questscreen.Params{
					Session:     j.params.Session,
					Topic:       j.params.Topic,
					UserDetails: j.params.UserDetails,
					Difficulty:  j.params.Difficulty,
					Teacher:     j.teacher,
					Chapter:     chapter,
				})
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: q}
				}
			},
		})
	}
	return components.NewMenu(items)
}

func (j *JourneyScreen) View(width, height int) string {
	if j.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", j.errMsg))
	}

	switch j.phase {
	case phaseLoading:
		return j.loading.View(width, height)

	case phasePersonaPick:
		header := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render("Choose your teacher")
		return "\n" + header + "\n\n" + j.personaMenu.View()

	case phaseChapterPick:
		header := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("Choose a chapter. %s will guide you!", j.teacher.Name))
		return "\n" + header + "\n\n" + j.chapterMenu.View()
	}
	return ""
}
