package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryuki04/lexbot/internal/history"
	"github.com/ryuki04/lexbot/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past learning sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		log := history.NewLog(st.HistoryRepo(), resolveUser(cmd))
		if err := log.Load(ctx); err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		entries := log.Display()
		if len(entries) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %5s  %s\n", "Timestamp", "Score", "Words")
		fmt.Println(strings.Repeat("─", 72))
		for _, e := range entries {
			words := strings.Join(e.Vocab, ", ")
			if len(words) > 44 {
				words = words[:44] + "..."
			}
			fmt.Printf("%-19s  %4d%%  %s\n", e.Timestamp, e.Score(), words)
		}
		return nil
	},
}
