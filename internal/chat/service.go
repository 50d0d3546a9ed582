package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/llm"
	"github.com/meghna/questly/internal/persona"
)

// TranscriptStore is the slice of the session store the chat service needs.
type TranscriptStore interface {
	// Transcript returns the stored turns, oldest first. Empty when the
	// session has not chatted yet.
	Transcript(ctx context.Context, session string) ([]Turn, error)

	// AppendTranscript appends all given turns atomically.
	AppendTranscript(ctx context.Context, session string, turns ...Turn) error
}

// Config holds chat generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for persona chat.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// SendInput carries one user message and the session context it belongs to.
type SendInput struct {
	Session     string
	Persona     persona.Descriptor
	Topic       string
	UserDetails string

	// Chapter and Quest, when present, ground the seed turn in what the
	// learner is currently working through.
	Chapter string
	Quest   *content.Quest

	UserText string
}

// Service runs persona chat over the persisted transcript.
type Service struct {
	provider llm.Provider
	store    TranscriptStore
	cfg      Config
}

// NewService creates a chat service.
func NewService(provider llm.Provider, store TranscriptStore, cfg Config) *Service {
	return &Service{provider: provider, store: store, cfg: cfg}
}

// Send appends the user's message to the conversation, asks the persona for
// a reply, and returns the assistant text. The new turns (including the seed
// system turn on first contact) are persisted together only after the
// provider call succeeds; a failed call leaves the stored transcript exactly
// as it was.
func (s *Service) Send(ctx context.Context, in SendInput) (string, error) {
	if strings.TrimSpace(in.UserText) == "" {
		return "", errors.New("empty chat message")
	}

	existing, err := s.store.Transcript(ctx, in.Session)
	if err != nil {
		return "", fmt.Errorf("load transcript: %w", err)
	}

	var pending []Turn
	if !hasSystemTurn(existing) {
		pending = append(pending, Turn{Role: RoleSystem, Content: buildSeedTurn(in)})
	}
	pending = append(pending, Turn{Role: RoleUser, Content: in.UserText})

	reply, err := s.generate(ctx, append(existing, pending...))
	if err != nil {
		return "", &content.GenerationError{Stage: "chat", Err: err}
	}
	pending = append(pending, Turn{Role: RoleAssistant, Content: reply})

	if err := s.store.AppendTranscript(ctx, in.Session, pending...); err != nil {
		return "", fmt.Errorf("persist transcript: %w", err)
	}

	return reply, nil
}

func (s *Service) generate(ctx context.Context, turns []Turn) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	req := llm.Request{
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}
	for _, t := range turns {
		switch t.Role {
		case RoleSystem:
			req.System = t.Content
		case RoleUser:
			req.Messages = append(req.Messages, llm.Message{Role: llm.RoleUser, Content: t.Content})
		case RoleAssistant:
			req.Messages = append(req.Messages, llm.Message{Role: llm.RoleAssistant, Content: t.Content})
		}
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return string(resp.Content), nil
}

func hasSystemTurn(turns []Turn) bool {
	for _, t := range turns {
		if t.Role == RoleSystem {
			return true
		}
	}
	return false
}

// buildSeedTurn writes the system turn that puts the model in character for
// the whole conversation.
func buildSeedTurn(in SendInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s.\n", persona.Describe(in.Persona))
	fmt.Fprintf(&b, "You are teaching %s to a student as a game, and the student wants to chat with you.\n", in.Topic)
	b.WriteString("Stay in character and keep your replies encouraging and concise.\n")

	if in.UserDetails != "" {
		fmt.Fprintf(&b, "The details of the student are as follows:\n%s\n", in.UserDetails)
	}
	if in.Chapter != "" {
		fmt.Fprintf(&b, "The student is currently working through the %q chapter.\n", in.Chapter)
	}
	if in.Quest != nil {
		fmt.Fprintf(&b, "The student's current quest is %q: %s\n", in.Quest.QuestName, in.Quest.QuestDescription)
		b.WriteString("Its questions are:\n")
		for i, q := range in.Quest.Questions {
			fmt.Fprintf(&b, "%d. %s (answer: %s)\n", i+1, q.Question, q.Answer)
		}
		b.WriteString("Never reveal an answer outright; guide the student toward it.\n")
	}

	return b.String()
}
