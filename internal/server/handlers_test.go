package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/llm"
	"github.com/meghna/questly/internal/persona"
	"github.com/meghna/questly/internal/store"
)

func testServer(t *testing.T, mock *llm.MockProvider) *Server {
	t.Helper()

	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	artifacts := st.ArtifactRepo()
	cfg := Config{Addr: ":0", RequestTimeout: 10 * time.Second, ShutdownTimeout: time.Second}

	return New(cfg, Deps{
		Content:   content.NewService(mock, content.DefaultConfig()),
		Chat:      chat.NewService(mock, artifacts, chat.DefaultConfig()),
		Artifacts: artifacts,
		Logger:    zap.NewNop(),
	})
}

func doJSON(t *testing.T, srv *Server, method, path string, body any, session string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if session != "" {
		req.Header.Set(sessionHeader, session)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

const chaptersJSON = `{"chapters":[
	{"level":1,"title":"Basics","description":"d","learning_goal":"g"},
	{"level":2,"title":"More","description":"d","learning_goal":"g"}
]}`

func personaSetJSON() string {
	p := func(name string) string {
		return `{"name":"` + name + `","personality":"p","teaching_style":"t","signature_trait":"s","example_behavior":{"introduction":"hi"}}`
	}
	return `{"teacher1":` + p("The Gamemaster Guide") +
		`,"teacher2":` + p("The Whimsical Wizard") +
		`,"teacher3":` + p("The AI Innovator") +
		`,"teacher4":` + p("The Zen Mentor") +
		`,"teacher5":` + p("The Witty Comedian") + `}`
}

const questJSON = `{"quest_name":"The Vault","quest_description":"d","quests":[
	{"question":"2+2?","answer":"4","points":10,"input_type":"text","difficulty":"easy"}
]}`

func TestHealth(t *testing.T) {
	srv := testServer(t, llm.NewMockProvider())

	rec := doJSON(t, srv, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateChapters(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(chaptersJSON)})
	srv := testServer(t, mock)

	rec := doJSON(t, srv, http.MethodPost, "/chapters", map[string]string{"topic": "Python"}, "sess-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var set content.ChapterSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Len(t, set.Chapters, 2)
	assert.Equal(t, "Basics", set.Chapters[0].Title)

	// The default learner details were applied to the prompt.
	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "ADHD")
}

func TestGenerateChaptersValidation(t *testing.T) {
	srv := testServer(t, llm.NewMockProvider())

	rec := doJSON(t, srv, http.MethodPost, "/chapters", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/chapters", bytes.NewBufferString("not json"))
	rec2 := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestGenerationFailureMapsToBadGateway(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: provider unavailable
	srv := testServer(t, mock)

	rec := doJSON(t, srv, http.MethodPost, "/chapters", map[string]string{"topic": "Python"}, "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetPersonaDefaults(t *testing.T) {
	srv := testServer(t, llm.NewMockProvider())

	rec := doJSON(t, srv, http.MethodGet, "/teacher_persona/teacher1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp personaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The Gamemaster Guide", resp.Persona.Name)
	assert.Contains(t, resp.Description, "Teacher Name: The Gamemaster Guide")

	rec = doJSON(t, srv, http.MethodGet, "/teacher_persona/nobody", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeneratePersonasThenLookup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(personaSetJSON())})
	srv := testServer(t, mock)

	rec := doJSON(t, srv, http.MethodPost, "/teacher_persona", map[string]string{"topic": "Python"}, "sess-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var set persona.Set
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Equal(t, "The Zen Mentor", set.Teacher4.Name)

	// Slot lookup within the same session resolves the generated set.
	rec = doJSON(t, srv, http.MethodGet, "/teacher_persona/teacher4", nil, "sess-1")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp personaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The Zen Mentor", resp.Persona.Name)
}

func TestGenerateQuestRequiresPersonaStage(t *testing.T) {
	srv := testServer(t, llm.NewMockProvider())

	body := map[string]any{
		"topic": "Python", "teacher_name": "The Zen Mentor",
		"chapter_name": "Basics", "level": 1,
	}
	rec := doJSON(t, srv, http.MethodPost, "/quests", body, "sess-1")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "generate personas first")
}

func TestGenerateQuestFlow(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(personaSetJSON())},
		llm.MockResponse{Content: json.RawMessage(questJSON)},
	)
	srv := testServer(t, mock)

	rec := doJSON(t, srv, http.MethodPost, "/teacher_persona", map[string]string{"topic": "Python"}, "sess-1")
	require.Equal(t, http.StatusOK, rec.Code)

	body := map[string]any{
		"topic": "Python", "teacher_name": "The Whimsical Wizard",
		"chapter_name": "Basics", "level": 2,
	}
	rec = doJSON(t, srv, http.MethodPost, "/quests", body, "sess-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var quest content.Quest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quest))
	assert.Equal(t, "The Vault", quest.QuestName)

	// The quest prompt embeds the level-2 point targets.
	questPrompt := mock.Calls[1].Messages[0].Content
	assert.Contains(t, questPrompt, "at least 35 points")

	// Unknown teacher in a seeded session is 404, not 409.
	body["teacher_name"] = "Professor Nobody"
	rec = doJSON(t, srv, http.MethodPost, "/quests", body, "sess-1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatWithTeacher(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Greetings, hero!")},
	)
	srv := testServer(t, mock)

	body := map[string]string{
		"teacher_name": "The Gamemaster Guide",
		"topic":        "Python",
		"user_msg":     "hello",
	}
	rec := doJSON(t, srv, http.MethodPost, "/chat_with_teacher", body, "sess-1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Greetings, hero!", resp["teacher_response"])

	// The chat request carried the persona seed as the system turn.
	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].System, "The Gamemaster Guide")
}

func TestChatUnknownTeacher(t *testing.T) {
	srv := testServer(t, llm.NewMockProvider())

	body := map[string]string{"teacher_name": "Professor Nobody", "topic": "Python", "user_msg": "hi"}
	rec := doJSON(t, srv, http.MethodPost, "/chat_with_teacher", body, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
