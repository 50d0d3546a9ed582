package store

import (
	"context"
	"fmt"
	"time"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/persona"
)

// Artifact field names. One row per (session, field); row presence is what
// marks a pipeline stage as completed.
const (
	FieldChapters   = "chapters"
	FieldPersonas   = "personas"
	FieldQuest      = "quest"
	FieldTranscript = "chat_transcript"
)

// StageNotReadyError reports a read of an artifact whose stage has not run
// yet for the session.
type StageNotReadyError struct {
	Field string
}

func (e *StageNotReadyError) Error() string {
	return fmt.Sprintf("stage not ready: no %s generated for this session", e.Field)
}

// ArtifactRepo stores the per-session pipeline artifacts. Put overwrites the
// whole artifact (regeneration replaces, never merges); reads of an absent
// artifact return *StageNotReadyError. The transcript is the exception: it is
// created lazily and only ever appended to.
type ArtifactRepo interface {
	PutChapters(ctx context.Context, session string, set *content.ChapterSet) error
	Chapters(ctx context.Context, session string) (*content.ChapterSet, error)

	PutPersonas(ctx context.Context, session string, set *persona.Set) error
	Personas(ctx context.Context, session string) (*persona.Set, error)

	PutQuest(ctx context.Context, session string, quest *content.Quest) error
	Quest(ctx context.Context, session string) (*content.Quest, error)

	// Transcript returns the stored chat turns, oldest first. A session with
	// no transcript yet gets an empty slice, not an error.
	Transcript(ctx context.Context, session string) ([]chat.Turn, error)

	// AppendTranscript appends all given turns in one transaction, creating
	// the transcript row on first use. Either every turn lands or none do.
	AppendTranscript(ctx context.Context, session string, turns ...chat.Turn) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStat aggregates token usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// AnswerEventData captures one answer attempt inside a quest run.
type AnswerEventData struct {
	SessionID     string
	QuestName     string
	QuestionIndex int
	Attempt       int
	LearnerAnswer string
	Correct       bool
	PointsDelta   int
	Score         int
}

// AnswerEventRecord is a stored answer attempt.
type AnswerEventRecord struct {
	Sequence      int64
	Timestamp     time.Time
	SessionID     string
	QuestName     string
	QuestionIndex int
	Attempt       int
	LearnerAnswer string
	Correct       bool
	PointsDelta   int
	Score         int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendAnswer records an answer attempt and its score movement.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// QueryAnswerEvents returns a session's answer attempts, oldest first.
	QueryAnswerEvents(ctx context.Context, session string, opts QueryOpts) ([]AnswerEventRecord, error)
}
