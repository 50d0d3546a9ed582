package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meghna/questly/internal/app"
	"github.com/meghna/questly/internal/chat"
	"github.com/meghna/questly/internal/content"
	"github.com/meghna/questly/internal/llm"
	"github.com/meghna/questly/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a learning adventure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay wires the store and services and starts the TUI. A missing LLM
// provider is not fatal; the home screen explains what to configure.
func runPlay(cmd *cobra.Command) error {
	ctx := context.Background()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Artifacts: st.ArtifactRepo(),
		Events:    st.EventRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMSink())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
	} else {
		opts.Content = content.NewService(provider, content.DefaultConfig())
		opts.Chat = chat.NewService(provider, st.ArtifactRepo(), chat.DefaultConfig())
	}

	return app.Run(opts)
}
