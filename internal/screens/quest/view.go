package quest

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/meghna/questly/internal/content"
	runner "github.com/meghna/questly/internal/quest"
	"github.com/meghna/questly/internal/ui/theme"
)

func (s *QuestScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.run == nil {
		return s.loading.View(width, height)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}

	switch s.run.State() {
	case runner.AwaitingChatDecision:
		return s.renderChatDecision(width)
	case runner.Completed:
		return s.renderCompleted(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the active question display.
func (s *QuestScreen) renderQuestion(width int) string {
	q := s.run.Question()

	var b strings.Builder

	// Quest info line.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.run.Quest().QuestName)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s  %d pts at stake",
			s.run.QuestionIndex()+1,
			len(s.run.Quest().Questions),
			q.Difficulty,
			q.Points,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text (centered).
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Question))
	b.WriteString("\n\n")

	// Hint, once the second try is open.
	if s.run.State() == runner.AwaitingSecondTry && q.Hint != "" {
		hint := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Hint: " + q.Hint)
		b.WriteString(hint)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Second try for %d points", q.Points/2)))
		b.WriteString("\n\n")
	}

	// Input area.
	if s.mcActive {
		b.WriteString(s.renderMultipleChoice(width))
	} else {
		prompt := answerPrompt(q.InputType)
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(prompt + s.input.View())
		b.WriteString(answerLine)
	}

	return b.String()
}

func answerPrompt(t content.InputType) string {
	switch t {
	case content.InputTrueFalse:
		return "True or False: "
	case content.InputFillInTheBlank:
		return "Fill in the blank: "
	case content.InputCode:
		return "Code: "
	default:
		return "Answer: "
	}
}

// renderMultipleChoice renders multiple choice options.
func (s *QuestScreen) renderMultipleChoice(width int) string {
	q := s.run.Question()

	var b strings.Builder
	for i, option := range q.Options {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, option)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\nSelect (1-%d) or use arrows + Enter", len(q.Options)))
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderFeedback renders the outcome of the last attempt.
func (s *QuestScreen) renderFeedback(width int) string {
	out := s.lastOutcome
	q := s.run.Question()

	var b strings.Builder
	b.WriteString("\n\n")

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	switch {
	case out.Correct && out.SecondTry:
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
			fmt.Sprintf("Correct on the second try! +%d points", out.PointsDelta))
	case out.Correct:
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
			fmt.Sprintf("Correct! +%d points", out.PointsDelta))
	case out.RetryOpen:
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite")
		if out.PointsDelta != 0 {
			center(lipgloss.NewStyle().Foreground(theme.TextDim),
				fmt.Sprintf("%d points", out.PointsDelta))
		}
		b.WriteString("\n")
		center(lipgloss.NewStyle().Foreground(theme.Accent), "Hint: "+out.Hint)
		center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("You get one more try for %d points", q.Points/2))
	default:
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Not quite")
		if out.PointsDelta != 0 {
			center(lipgloss.NewStyle().Foreground(theme.TextDim),
				fmt.Sprintf("%d points", out.PointsDelta))
		}
		center(lipgloss.NewStyle().Foreground(theme.TextDim),
			fmt.Sprintf("The answer was: %s", q.Answer))
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Score: %d", out.Score))

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.TextDim), "Press any key to continue...")

	return b.String()
}

// renderChatDecision renders the chat-or-advance prompt between questions.
func (s *QuestScreen) renderChatDecision(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
		fmt.Sprintf("Want to talk it over with %s?", s.params.Teacher.Name))
	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, let's chat")
	center(lipgloss.NewStyle().Foreground(theme.Primary), "[N] Next question")

	return b.String()
}

// renderCompleted renders the quest summary.
func (s *QuestScreen) renderCompleted(width int) string {
	score := s.run.Score()
	required := content.RequiredPoints(s.params.Chapter.Level)
	maximum := content.MaxPoints(s.params.Chapter.Level)

	var b strings.Builder
	b.WriteString("\n\n")

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	if score >= required {
		center(lipgloss.NewStyle().Foreground(theme.Success).Bold(true), "Quest complete. Victory!")
		center(lipgloss.NewStyle().Foreground(theme.Text),
			fmt.Sprintf("%q is conquered.", s.run.Quest().QuestName))
	} else {
		center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), "Quest over")
		center(lipgloss.NewStyle().Foreground(theme.Text),
			fmt.Sprintf("You needed %d points this time.", required))
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		fmt.Sprintf("Final score: %d / %d (required %d)", score, maximum, required))

	b.WriteString("\n\n")
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("[C] Chat with %s about the quest", s.params.Teacher.Name))
	center(lipgloss.NewStyle().Foreground(theme.TextDim), "[Enter] Back to chapters")

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this quest?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your score will not be kept."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
