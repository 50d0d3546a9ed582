// Package chatscreen is the free-form persona chat overlay. Typing "exit" or
// "quit" returns to the quest flow.
package chatscreen

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/persona"
	"github.com/meghna/questly/internal/router"
	"github.com/meghna/questly/internal/screen"
	"github.com/meghna/questly/internal/ui/components"
	"github.com/meghna/questly/internal/ui/layout"
	"github.com/meghna/questly/internal/ui/theme"
)

// Params is the conversation context handed to the chat service.
type Params struct {
	Session     string
	Teacher     persona.Descriptor
	Topic       string
	UserDetails string
	Chapter     string
	Quest       *content.Quest
}

// chatReplyMsg is sent when the persona's reply arrives.
type chatReplyMsg struct {
	Reply string
	Err   error
}

type exchange struct {
	user    bool
	content string
}

// ChatScreen renders the running conversation and an input line.
type ChatScreen struct {
	svc    *chat.Service
	params Params

	history []exchange
	input   components.TextInput
	loading components.Loading
	waiting bool
	errMsg  string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.StatusProvider = (*ChatScreen)(nil)

// New creates a new ChatScreen.
func New(svc *chat.Service, params Params) *ChatScreen {
	return &ChatScreen{
		svc:     svc,
		params:  params,
		input:   components.NewTextInput("Say something... (exit to return)", false, 500),
		loading: components.NewLoading(params.Teacher.Name + " is thinking..."),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Chat"
}

func (c *ChatScreen) Status() string {
	return c.params.Teacher.Name
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		c.waiting = false
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
			return c, nil
		}
		c.history = append(c.history, exchange{content: msg.Reply})
		c.input = components.NewTextInput("Say something... (exit to return)", false, 500)
		return c, c.input.Init()

	case tea.KeyMsg:
		if c.waiting {
			return c, nil
		}
		if msg.String() == "enter" {
			return c.send()
		}
	}

	if c.waiting {
		var cmd tea.Cmd
		c.loading, cmd = c.loading.Update(msg)
		return c, cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) send() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(c.input.Value())
	if text == "" {
		return c, nil
	}
	switch strings.ToLower(text) {
	case "exit", "quit":
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	}

	c.errMsg = ""
	c.history = append(c.history, exchange{user: true, content: text})
	c.waiting = true

	svc, p := c.svc, c.params
	sendCmd := func() tea.Msg {
		reply, err := svc.Send(context.Background(), chat.SendInput{
			Session:     p.Session,
			Persona:     p.Teacher,
			Topic:       p.Topic,
			UserDetails: p.UserDetails,
			Chapter:     p.Chapter,
			Quest:       p.Quest,
			UserText:    text,
		})
		return chatReplyMsg{Reply: reply, Err: err}
	}
	return c, tea.Batch(c.loading.Init(), sendCmd)
}

func (c *ChatScreen) View(width, height int) string {
	nameStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	youStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Width(width - 6).Foreground(theme.Text)

	var lines []string
	for _, e := range c.history {
		if e.user {
			lines = append(lines, youStyle.Render("  You"))
		} else {
			lines = append(lines, nameStyle.Render("  "+c.params.Teacher.Name))
		}
		lines = append(lines, strings.Split(bodyStyle.Render("    "+e.content), "\n")...)
		lines = append(lines, "")
	}

	if c.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  Could not reach your teacher: "+c.errMsg))
		lines = append(lines, "")
	}

	// Keep the tail that fits above the input line.
	avail := height - 3
	if avail < 0 {
		avail = 0
	}
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	if c.waiting {
		b.WriteString("  " + c.loading.ViewInline() + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  > %s\n", c.input.View()))
	}

	return b.String()
}
