package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/router"
	"github.com/meghna/questly/internal/screen"
	"github.com/meghna/questly/internal/screens/setup"
	"github.com/meghna/questly/internal/store"
	"github.com/meghna/questly/internal/ui/components"
	"github.com/meghna/questly/internal/ui/theme"
)

const banner = `  ██████  ██    ██ ███████ ███████ ████████ ██     ██    ██
 ██    ██ ██    ██ ██      ██         ██    ██      ██  ██
 ██    ██ ██    ██ █████   ███████    ██    ██       ████
 ██ ▄▄ ██ ██    ██ ██           ██    ██    ██        ██
  ██████   ██████  ███████ ███████    ██    ███████   ██
     ▀▀`

// Deps carries the services the adventure flow needs.
type Deps struct {
	Content   *content.Service
	Chat      *chat.Service
	Artifacts store.ArtifactRepo
	Events    store.EventRepo
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	llmReady := deps.Content != nil && deps.Chat != nil

	items := []components.MenuItem{
		{
			Label:    "START ADVENTURE",
			Disabled: !llmReady,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: setup.New(setup.Deps{
						Content:   deps.Content,
						Chat:      deps.Chat,
						Artifacts: deps.Artifacts,
						Events:    deps.Events,
					})}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render(banner))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Align(lipgloss.Center).
		Render("Turn any topic into a learning adventure"))

	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	if h.deps.Content == nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("No LLM provider configured. Set an API key (e.g. ANTHROPIC_API_KEY) and restart."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
