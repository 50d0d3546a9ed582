package content

import "github.com/meghna/questly/internal/llm"

// ChapterSetSchema defines the JSON schema for chapter progression generation.
var ChapterSetSchema = &llm.Schema{
	Name:        "chapter-set",
	Description: "An ordered chapter progression for learning a topic as a game",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chapters": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"level": map[string]any{
							"type":        "integer",
							"description": "Level number, starting at 1 and increasing",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Short, exciting chapter title",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One or two sentences on what the chapter covers",
						},
						"learning_goal": map[string]any{
							"type":        "string",
							"description": "What the student can do after completing the chapter",
						},
					},
					"required":             []any{"level", "title", "description", "learning_goal"},
					"additionalProperties": false,
				},
				"minItems": 1,
			},
		},
		"required":             []any{"chapters"},
		"additionalProperties": false,
	},
}

var personaSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Memorable persona name, e.g. 'The Gamemaster Guide'",
		},
		"personality": map[string]any{
			"type":        "string",
			"description": "One sentence on the persona's character",
		},
		"teaching_style": map[string]any{
			"type":        "string",
			"description": "How the persona turns chapters into play",
		},
		"signature_trait": map[string]any{
			"type":        "string",
			"description": "The persona's defining quirk",
		},
		"example_behavior": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"introduction": map[string]any{
					"type":        "string",
					"description": "A sample greeting in the persona's voice",
				},
				"reward_system": map[string]any{"type": "string"},
				"challenge":     map[string]any{"type": "string"},
				"reflection":    map[string]any{"type": "string"},
				"bonus":         map[string]any{"type": "string"},
			},
			"required":             []any{"introduction"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"name", "personality", "teaching_style", "signature_trait", "example_behavior"},
	"additionalProperties": false,
}

// PersonaSetSchema defines the JSON schema for teacher persona generation.
// The output carries exactly five personas under fixed slot keys.
var PersonaSetSchema = &llm.Schema{
	Name:        "persona-set",
	Description: "Five distinct teacher personas tailored to the topic and student",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"teacher1": personaSchema,
			"teacher2": personaSchema,
			"teacher3": personaSchema,
			"teacher4": personaSchema,
			"teacher5": personaSchema,
		},
		"required":             []any{"teacher1", "teacher2", "teacher3", "teacher4", "teacher5"},
		"additionalProperties": false,
	},
}

// QuestSchema defines the JSON schema for quest generation.
var QuestSchema = &llm.Schema{
	Name:        "quest",
	Description: "A scored quiz quest for one chapter, voiced by a teacher persona",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quest_name": map[string]any{
				"type":        "string",
				"description": "Short quest title in the persona's voice",
			},
			"quest_description": map[string]any{
				"type":        "string",
				"description": "One or two sentences framing the quest",
			},
			"quests": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The exact expected answer",
						},
						"points": map[string]any{
							"type":        "integer",
							"description": "Points for a correct answer, at least 1",
						},
						"input_type": map[string]any{
							"type": "string",
							"enum": []any{"text", "multiple_choice", "true_false", "fill_in_the_blank", "short_answer", "code"},
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Choices, required for multiple_choice questions",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "Optional hint that unlocks a half-points second attempt",
						},
					},
					"required":             []any{"question", "answer", "points", "input_type", "difficulty"},
					"additionalProperties": false,
				},
				"minItems": 1,
			},
		},
		"required":             []any{"quest_name", "quest_description", "quests"},
		"additionalProperties": false,
	},
}
