package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/oslerlabs/osler/internal/app"
	"github.com/oslerlabs/osler/internal/dialogue"
	"github.com/oslerlabs/osler/internal/llm"
	"github.com/oslerlabs/osler/internal/notes"
	"github.com/oslerlabs/osler/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI. An
// empty topic starts on the welcome screen.
func runApp(cmd *cobra.Command, topic string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
		Topic:        topic,
	}

	provider, err := buildProvider(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in question templates.")
	} else {
		opts.Dialogue = dialogue.NewService(provider, dialogue.DefaultConfig())
		opts.Notes = notes.NewService(provider, notes.DefaultConfig())
	}

	return app.Run(opts)
}

// buildProvider resolves LLM configuration: explicit OSLER_* variables win,
// then the providers' conventional key variables are probed.
func buildProvider(ctx context.Context, eventRepo store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.NewProvider(ctx, cfg, eventRepo)
}
