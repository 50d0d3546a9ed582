// Package content generates the learning artifacts that drive a session:
// the chapter progression for a topic, the teacher persona set, and the
// per-chapter scored quests.
package content

// Chapter is one level in the learning progression.
type Chapter struct {
	Level        int    `json:"level"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	LearningGoal string `json:"learning_goal"`
}

// ChapterSet is an ordered chapter progression. Levels start at 1 and
// increase strictly with no gaps.
type ChapterSet struct {
	Chapters []Chapter `json:"chapters"`
}

// InputType tells the front end how to collect the learner's answer.
type InputType string

const (
	InputText           InputType = "text"
	InputMultipleChoice InputType = "multiple_choice"
	InputTrueFalse      InputType = "true_false"
	InputFillInTheBlank InputType = "fill_in_the_blank"
	InputShortAnswer    InputType = "short_answer"
	InputCode           InputType = "code"
)

// Valid reports whether t is one of the known input types.
func (t InputType) Valid() bool {
	switch t {
	case InputText, InputMultipleChoice, InputTrueFalse,
		InputFillInTheBlank, InputShortAnswer, InputCode:
		return true
	}
	return false
}

// Difficulty labels a question's difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty labels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is one scored question inside a quest. Options is populated only
// for multiple-choice questions. Hint, when present, grants a second attempt
// at half points.
type Question struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Points     int        `json:"points"`
	InputType  InputType  `json:"input_type"`
	Options    []string   `json:"options,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Hint       string     `json:"hint,omitempty"`
}

// Quest is a generated quiz for one chapter.
type Quest struct {
	QuestName        string     `json:"quest_name"`
	QuestDescription string     `json:"quest_description"`
	Questions        []Question `json:"quests"`
}

// TotalPoints sums the maximum obtainable points across all questions.
// Consumers compare it against MaxPoints for the chapter's level.
func (q *Quest) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}
