package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/meghna/questly/internal/llm"
	"github.com/meghna/questly/internal/persona"
)

func TestGenerateChaptersNormalizesLevels(t *testing.T) {
	// Levels out of order with a gap; the service must renumber 1..n.
	raw := `{"chapters":[
		{"level":5,"title":"Loops","description":"d","learning_goal":"g"},
		{"level":2,"title":"Variables","description":"d","learning_goal":"g"},
		{"level":9,"title":"Functions","description":"d","learning_goal":"g"}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	svc := NewService(mock, DefaultConfig())

	set, err := svc.GenerateChapters(context.Background(), "Python", DefaultUserDetails)
	if err != nil {
		t.Fatalf("GenerateChapters: %v", err)
	}

	wantTitles := []string{"Variables", "Loops", "Functions"}
	if len(set.Chapters) != len(wantTitles) {
		t.Fatalf("got %d chapters, want %d", len(set.Chapters), len(wantTitles))
	}
	for i, c := range set.Chapters {
		if c.Level != i+1 {
			t.Errorf("chapter %d has level %d, want %d", i, c.Level, i+1)
		}
		if c.Title != wantTitles[i] {
			t.Errorf("chapter %d title = %q, want %q", i, c.Title, wantTitles[i])
		}
	}
}

func TestGenerateChaptersEmptyList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"chapters":[]}`)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateChapters(context.Background(), "Python", DefaultUserDetails)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *GenerationError", err)
	}
	if genErr.Stage != "chapters" {
		t.Errorf("Stage = %q, want chapters", genErr.Stage)
	}
}

func TestGenerateChaptersPromptMentionsTopicAndDetails(t *testing.T) {
	raw := `{"chapters":[{"level":1,"title":"T","description":"d","learning_goal":"g"}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateChapters(context.Background(), "chess openings", "loves puzzles"); err != nil {
		t.Fatalf("GenerateChapters: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("got %d provider calls, want 1", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "chess openings") {
		t.Errorf("prompt does not mention the topic:\n%s", prompt)
	}
	if !strings.Contains(prompt, "loves puzzles") {
		t.Errorf("prompt does not carry the learner details:\n%s", prompt)
	}
	if mock.Calls[0].Schema != ChapterSetSchema {
		t.Error("request did not carry the chapter-set schema")
	}
}

func personaJSON(name string) string {
	return `{"name":"` + name + `","personality":"p","teaching_style":"t","signature_trait":"s","example_behavior":{"introduction":"hi"}}`
}

func TestGeneratePersonas(t *testing.T) {
	raw := `{"teacher1":` + personaJSON("A") +
		`,"teacher2":` + personaJSON("B") +
		`,"teacher3":` + personaJSON("C") +
		`,"teacher4":` + personaJSON("D") +
		`,"teacher5":` + personaJSON("E") + `}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	svc := NewService(mock, DefaultConfig())

	set, err := svc.GeneratePersonas(context.Background(), "Python", DefaultUserDetails)
	if err != nil {
		t.Fatalf("GeneratePersonas: %v", err)
	}

	names := []string{}
	for _, d := range set.All() {
		names = append(names, d.Name)
	}
	want := []string{"A", "B", "C", "D", "E"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("slot %d name = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestGeneratePersonasMissingName(t *testing.T) {
	raw := `{"teacher1":` + personaJSON("A") +
		`,"teacher2":` + personaJSON("") +
		`,"teacher3":` + personaJSON("C") +
		`,"teacher4":` + personaJSON("D") +
		`,"teacher5":` + personaJSON("E") + `}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GeneratePersonas(context.Background(), "Python", DefaultUserDetails)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *GenerationError", err)
	}
}

const validQuestJSON = `{
	"quest_name": "The Variable Vault",
	"quest_description": "Crack the vault.",
	"quests": [
		{"question":"2+2?","answer":"4","points":10,"input_type":"text","difficulty":"easy","hint":"count"},
		{"question":"Pick one","answer":"b","points":15,"input_type":"multiple_choice","options":["a","b"],"difficulty":"medium"}
	]
}`

func TestGenerateQuest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validQuestJSON)})
	svc := NewService(mock, DefaultConfig())

	teacher := persona.DefaultSet().Teacher1
	quest, err := svc.GenerateQuest(context.Background(), "Python", teacher, "Variables", 2, DefaultUserDetails)
	if err != nil {
		t.Fatalf("GenerateQuest: %v", err)
	}

	if quest.QuestName != "The Variable Vault" {
		t.Errorf("QuestName = %q", quest.QuestName)
	}
	if got := quest.TotalPoints(); got != 25 {
		t.Errorf("TotalPoints = %d, want 25", got)
	}

	// The prompt states the level's point targets and speaks as the persona.
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "at least 35 points") {
		t.Errorf("prompt missing required-points target for level 2:\n%s", prompt)
	}
	if !strings.Contains(prompt, "maximum of 45 points") {
		t.Errorf("prompt missing max-points target for level 2:\n%s", prompt)
	}
	if !strings.Contains(prompt, teacher.Name) {
		t.Errorf("prompt does not embed the persona description:\n%s", prompt)
	}
}

func TestGenerateQuestValidation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			"no questions",
			`{"quest_name":"q","quest_description":"d","quests":[]}`,
		},
		{
			"non-positive points",
			`{"quest_name":"q","quest_description":"d","quests":[{"question":"?","answer":"a","points":0,"input_type":"text","difficulty":"easy"}]}`,
		},
		{
			"multiple choice without options",
			`{"quest_name":"q","quest_description":"d","quests":[{"question":"?","answer":"a","points":5,"input_type":"multiple_choice","difficulty":"easy"}]}`,
		},
		{
			"unknown input type",
			`{"quest_name":"q","quest_description":"d","quests":[{"question":"?","answer":"a","points":5,"input_type":"essay","difficulty":"easy"}]}`,
		},
		{
			"unknown difficulty",
			`{"quest_name":"q","quest_description":"d","quests":[{"question":"?","answer":"a","points":5,"input_type":"text","difficulty":"extreme"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.raw)})
			svc := NewService(mock, DefaultConfig())

			_, err := svc.GenerateQuest(context.Background(), "Python", persona.DefaultSet().Teacher1, "Variables", 1, DefaultUserDetails)
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("error = %v, want *GenerationError", err)
			}
			if genErr.Stage != "quest" {
				t.Errorf("Stage = %q, want quest", genErr.Stage)
			}
		})
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.GenerateChapters(context.Background(), "Python", DefaultUserDetails)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *GenerationError", err)
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("GenerationError does not wrap the provider error: %v", err)
	}
}
