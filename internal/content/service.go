package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/meghna/questly/internal/llm"
	"github.com/meghna/questly/internal/persona"
)

// Service generates chapters, persona sets, and quests through an LLM
// provider. It does not retry; transport retry lives in the provider stack.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a content generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GenerateChapters produces the chapter progression for a topic. Levels in
// the result are normalized: sorted ascending and renumbered from 1 with no
// gaps, whatever the model emitted.
func (s *Service) GenerateChapters(ctx context.Context, topic, userDetails string) (*ChapterSet, error) {
	ctx = llm.WithPurpose(ctx, "chapter-gen")

	raw, err := s.generate(ctx, buildChaptersPrompt(topic, userDetails), ChapterSetSchema)
	if err != nil {
		return nil, &GenerationError{Stage: "chapters", Err: err}
	}

	var set ChapterSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, &GenerationError{Stage: "chapters", Err: fmt.Errorf("parse response: %w", err)}
	}
	if len(set.Chapters) == 0 {
		return nil, &GenerationError{Stage: "chapters", Err: errors.New("empty chapter list")}
	}

	normalizeChapters(&set)
	return &set, nil
}

// GeneratePersonas produces a topic-tailored set of five teacher personas.
func (s *Service) GeneratePersonas(ctx context.Context, topic, userDetails string) (*persona.Set, error) {
	ctx = llm.WithPurpose(ctx, "persona-gen")

	raw, err := s.generate(ctx, buildPersonasPrompt(topic, userDetails), PersonaSetSchema)
	if err != nil {
		return nil, &GenerationError{Stage: "personas", Err: err}
	}

	var set persona.Set
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, &GenerationError{Stage: "personas", Err: fmt.Errorf("parse response: %w", err)}
	}
	for i, d := range set.All() {
		if d.Name == "" {
			return nil, &GenerationError{Stage: "personas", Err: fmt.Errorf("persona %s has no name", persona.Slots[i])}
		}
		if d.ExampleBehavior.Introduction == "" {
			return nil, &GenerationError{Stage: "personas", Err: fmt.Errorf("persona %q has no introduction", d.Name)}
		}
	}

	return &set, nil
}

// GenerateQuest produces a scored quest for one chapter, voiced by the given
// persona. The prompt states the level's required and maximum point targets;
// whether the generated questions actually reach the maximum is surfaced via
// Quest.TotalPoints and left to the caller.
func (s *Service) GenerateQuest(ctx context.Context, topic string, teacher persona.Descriptor, chapterTitle string, level int, userDetails string) (*Quest, error) {
	ctx = llm.WithPurpose(ctx, "quest-gen")

	prompt := buildQuestPrompt(persona.Describe(teacher), topic, chapterTitle, level, userDetails)
	raw, err := s.generate(ctx, prompt, QuestSchema)
	if err != nil {
		return nil, &GenerationError{Stage: "quest", Err: err}
	}

	var quest Quest
	if err := json.Unmarshal(raw, &quest); err != nil {
		return nil, &GenerationError{Stage: "quest", Err: fmt.Errorf("parse response: %w", err)}
	}
	if err := validateQuest(&quest); err != nil {
		return nil, &GenerationError{Stage: "quest", Err: err}
	}

	return &quest, nil
}

func (s *Service) generate(ctx context.Context, prompt string, schema *llm.Schema) (json.RawMessage, error) {
	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Content, nil
}

// normalizeChapters sorts by level and renumbers 1..n so callers always see
// levels that start at 1 and increase without gaps.
func normalizeChapters(set *ChapterSet) {
	sort.SliceStable(set.Chapters, func(i, j int) bool {
		return set.Chapters[i].Level < set.Chapters[j].Level
	})
	for i := range set.Chapters {
		set.Chapters[i].Level = i + 1
	}
}

func validateQuest(q *Quest) error {
	if len(q.Questions) == 0 {
		return errors.New("quest has no questions")
	}
	for i, question := range q.Questions {
		if question.Question == "" {
			return fmt.Errorf("question %d has no text", i+1)
		}
		if question.Answer == "" {
			return fmt.Errorf("question %d has no answer", i+1)
		}
		if question.Points <= 0 {
			return fmt.Errorf("question %d has non-positive points %d", i+1, question.Points)
		}
		if !question.InputType.Valid() {
			return fmt.Errorf("question %d has unknown input type %q", i+1, question.InputType)
		}
		if !question.Difficulty.Valid() {
			return fmt.Errorf("question %d has unknown difficulty %q", i+1, question.Difficulty)
		}
		if question.InputType == InputMultipleChoice && len(question.Options) == 0 {
			return fmt.Errorf("question %d is multiple choice but has no options", i+1)
		}
	}
	return nil
}
