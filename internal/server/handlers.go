package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/persona"
	"github.com/meghna/questly/internal/store"
)

// sessionHeader carries the learning session identity. Requests without it
// share one default session, which matches the original single-user API.
const sessionHeader = "X-Session-ID"

const defaultSession = "default"

type handlers struct {
	content   *content.Service
	chat      *chat.Service
	artifacts store.ArtifactRepo
	logger    *zap.Logger
}

func sessionFrom(r *http.Request) string {
	if s := r.Header.Get(sessionHeader); s != "" {
		return s
	}
	return defaultSession
}

func orDefaultDetails(userDetails string) string {
	if userDetails == "" {
		return content.DefaultUserDetails
	}
	return userDetails
}

func (h *handlers) home(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Educational Game API",
	})
}

type chaptersRequest struct {
	Topic       string `json:"topic"`
	UserDetails string `json:"user_details"`
}

func (h *handlers) generateChapters(w http.ResponseWriter, r *http.Request) {
	var req chaptersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Topic == "" {
		h.respondError(w, http.StatusBadRequest, "topic is required")
		return
	}

	session := sessionFrom(r)
	set, err := h.content.GenerateChapters(r.Context(), req.Topic, orDefaultDetails(req.UserDetails))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	if err := h.artifacts.PutChapters(r.Context(), session, set); err != nil {
		h.logger.Error("store chapters", zap.Error(err), zap.String("session", session))
		h.respondError(w, http.StatusInternalServerError, "failed to store chapters")
		return
	}

	h.respondJSON(w, http.StatusOK, set)
}

func (h *handlers) generatePersonas(w http.ResponseWriter, r *http.Request) {
	var req chaptersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Topic == "" {
		h.respondError(w, http.StatusBadRequest, "topic is required")
		return
	}

	session := sessionFrom(r)
	set, err := h.content.GeneratePersonas(r.Context(), req.Topic, orDefaultDetails(req.UserDetails))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	if err := h.artifacts.PutPersonas(r.Context(), session, set); err != nil {
		h.logger.Error("store personas", zap.Error(err), zap.String("session", session))
		h.respondError(w, http.StatusInternalServerError, "failed to store personas")
		return
	}

	h.respondJSON(w, http.StatusOK, set)
}

type personaResponse struct {
	ID          string             `json:"id"`
	Persona     persona.Descriptor `json:"persona"`
	Description string             `json:"description"`
}

func (h *handlers) getPersona(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	catalog := h.sessionCatalog(r)

	d, err := catalog.Get(id)
	if err != nil {
		// Fall back to display-name lookup; the chat boundary addresses
		// personas by name.
		d, err = catalog.GetByName(id)
	}
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, personaResponse{
		ID:          id,
		Persona:     d,
		Description: persona.Describe(d),
	})
}

type questRequest struct {
	Topic       string `json:"topic"`
	TeacherName string `json:"teacher_name"`
	ChapterName string `json:"chapter_name"`
	Level       int    `json:"level"`
	UserDetails string `json:"user_details"`
}

func (h *handlers) generateQuest(w http.ResponseWriter, r *http.Request) {
	var req questRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Topic == "" || req.TeacherName == "" || req.ChapterName == "" {
		h.respondError(w, http.StatusBadRequest, "topic, teacher_name and chapter_name are required")
		return
	}
	if req.Level < 1 {
		h.respondError(w, http.StatusBadRequest, "level must be at least 1")
		return
	}

	session := sessionFrom(r)

	// Quests are voiced by a generated persona, so the persona stage must
	// have run for this session.
	set, err := h.artifacts.Personas(r.Context(), session)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	teacher, err := persona.NewCatalog(*set).GetByName(req.TeacherName)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	quest, err := h.content.GenerateQuest(r.Context(), req.Topic, teacher, req.ChapterName, req.Level, orDefaultDetails(req.UserDetails))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	if err := h.artifacts.PutQuest(r.Context(), session, quest); err != nil {
		h.logger.Error("store quest", zap.Error(err), zap.String("session", session))
		h.respondError(w, http.StatusInternalServerError, "failed to store quest")
		return
	}

	h.respondJSON(w, http.StatusOK, quest)
}

type chatRequest struct {
	TeacherName string `json:"teacher_name"`
	Topic       string `json:"topic"`
	UserDetails string `json:"user_details"`
	UserMsg     string `json:"user_msg"`
}

func (h *handlers) chatWithTeacher(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TeacherName == "" || req.Topic == "" {
		h.respondError(w, http.StatusBadRequest, "teacher_name and topic are required")
		return
	}
	if req.UserMsg == "" {
		req.UserMsg = "Continue"
	}

	session := sessionFrom(r)
	teacher, err := h.sessionCatalog(r).GetByName(req.TeacherName)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	in := chat.SendInput{
		Session:     session,
		Persona:     teacher,
		Topic:       req.Topic,
		UserDetails: orDefaultDetails(req.UserDetails),
		UserText:    req.UserMsg,
	}
	// Ground the chat in the session's current quest when one exists.
	if quest, qerr := h.artifacts.Quest(r.Context(), session); qerr == nil {
		in.Quest = quest
	}

	reply, err := h.chat.Send(r.Context(), in)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"teacher_response": reply})
}

// sessionCatalog returns a catalog over the session's generated personas, or
// the built-in defaults when the persona stage has not run.
func (h *handlers) sessionCatalog(r *http.Request) *persona.Catalog {
	set, err := h.artifacts.Personas(r.Context(), sessionFrom(r))
	if err != nil {
		return persona.DefaultCatalog()
	}
	return persona.NewCatalog(*set)
}

// handleDomainError maps domain errors onto HTTP status codes.
func (h *handlers) handleDomainError(w http.ResponseWriter, err error) {
	var notReady *store.StageNotReadyError
	if errors.As(err, &notReady) {
		h.respondError(w, http.StatusConflict, "generate "+notReady.Field+" first")
		return
	}

	var notFound *persona.NotFoundError
	if errors.As(err, &notFound) {
		h.respondError(w, http.StatusNotFound, notFound.Error())
		return
	}

	var genErr *content.GenerationError
	if errors.As(err, &genErr) {
		h.logger.Error("generation failed", zap.Error(err))
		h.respondError(w, http.StatusBadGateway, genErr.Error())
		return
	}

	h.logger.Error("unhandled error", zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, "internal error")
}

func (h *handlers) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func (h *handlers) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}
