package cmd

import (
	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexbot",
	Short: "AI vocabulary tutor",
	Long:  "LexBot is a terminal app for learning vocabulary with AI-generated quizzes and flashcards.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXBOT_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "User identifier for history storage")
	rootCmd.PersistentFlags().String("lang", "en", "Interface and feedback language (en, ja)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEXBOT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolveUser(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		u = "default"
	}
	return u
}

func resolveLang(cmd *cobra.Command) i18n.Lang {
	l, _ := cmd.Flags().GetString("lang")
	switch l {
	case "ja":
		return i18n.Japanese
	case "es":
		return i18n.Spanish
	default:
		return i18n.English
	}
}
