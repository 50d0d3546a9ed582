package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meghna/questly/internal/ui/theme"
)

// Loading is a spinner with a message, shown while generation runs.
type Loading struct {
	Message string
	spinner spinner.Model
}

// NewLoading creates a loading indicator with the given message.
func NewLoading(message string) Loading {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Loading{
		Message: message,
		spinner: sp,
	}
}

// Init starts the spinner animation.
func (l Loading) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner animation.
func (l Loading) Update(msg tea.Msg) (Loading, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// ViewInline renders the spinner and message on a single line.
func (l Loading) ViewInline() string {
	return l.spinner.View() + " " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(l.Message)
}

// View renders the spinner and message centered in the given area.
func (l Loading) View(width, height int) string {
	content := l.spinner.View() + " " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(l.Message)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
