package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/llm"
	"github.com/meghna/questly/internal/server"
	"github.com/meghna/questly/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := server.LoadConfig()
		if err != nil {
			return err
		}

		logger, err := buildLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// The API is generation-only, so a provider is required here.
		provider, err := llm.NewProviderFromEnv(ctx, st.LLMSink())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		srv := server.New(cfg, server.Deps{
			Content:   content.NewService(provider, content.DefaultConfig()),
			Chat:      chat.NewService(provider, st.ArtifactRepo(), chat.DefaultConfig()),
			Artifacts: st.ArtifactRepo(),
			Logger:    logger,
		})
		return srv.ListenAndServe(ctx)
	},
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
