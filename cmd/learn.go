package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ryuki04/lexbot/internal/app"
	"github.com/ryuki04/lexbot/internal/grading"
	"github.com/ryuki04/lexbot/internal/history"
	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/session"
	"github.com/ryuki04/lexbot/internal/store"
	"github.com/ryuki04/lexbot/internal/translate"
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Start a learning session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	state := session.NewState()
	log := history.NewLog(st.HistoryRepo(), resolveUser(cmd))
	if err := log.Load(ctx); err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	deps := app.Deps{
		State:  state,
		Log:    log,
		UILang: resolveLang(cmd),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.RequestLog())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz generation and on-demand translation will be unavailable.")
	}
	// The translator still works without a provider via the static table.
	deps.Translator = translate.New(provider, state.Cache)
	if provider != nil {
		deps.Generator = quizgen.New(provider, quizgen.DefaultConfig())
		deps.Grader = grading.New(provider, grading.DefaultConfig())
	}

	return app.Run(deps)
}
