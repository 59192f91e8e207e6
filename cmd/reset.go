package cmd

import (
	"context"
	"fmt"

	"github.com/ryuki04/lexbot/internal/history"
	"github.com/ryuki04/lexbot/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded sessions for a user",
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

		user := resolveUser(cmd)
		log := history.NewLog(st.HistoryRepo(), user)
		if err := log.Clear(context.Background()); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}

		fmt.Printf("History cleared for user %q.\n", user)
		return nil
	},
}
