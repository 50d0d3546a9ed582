// Package server exposes the content pipeline and persona chat over HTTP.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/store"
)

// Deps carries everything the handlers need.
type Deps struct {
	Content   *content.Service
	Chat      *chat.Service
	Artifacts store.ArtifactRepo
	Logger    *zap.Logger
}

// Server is the HTTP front end.
type Server struct {
	cfg     Config
	logger  *zap.Logger
	handler http.Handler
	httpSrv *http.Server
}

// New builds a Server with the full middleware stack and all routes mounted.
func New(cfg Config, deps Deps) *Server {
	h := &handlers{
		content:   deps.Content,
		chat:      deps.Chat,
		artifacts: deps.Artifacts,
		logger:    deps.Logger,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger(deps.Logger))
	r.Use(allowAllCORS)
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Get("/", h.home)
	r.Post("/chapters", h.generateChapters)
	r.Post("/teacher_persona", h.generatePersonas)
	r.Get("/teacher_persona/{id}", h.getPersona)
	r.Post("/quests", h.generateQuest)
	r.Post("/chat_with_teacher", h.chatWithTeacher)

	return &Server{
		cfg:     cfg,
		logger:  deps.Logger,
		handler: r,
		httpSrv: &http.Server{Addr: cfg.Addr, Handler: r},
	}
}

// Handler returns the mounted router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.cfg.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}
