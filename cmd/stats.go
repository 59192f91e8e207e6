package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show AI request usage",
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

		stats, err := st.RequestLog().Summary(context.Background())
		if err != nil {
			return fmt.Errorf("summarize requests: %w", err)
		}

		if stats.Total == 0 {
			fmt.Println("No AI requests recorded yet.")
			return nil
		}

		fmt.Println("AI Request Usage")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-16s  %d\n", "Requests", stats.Total)
		fmt.Printf("%-16s  %d\n", "Failed", stats.Failed)
		fmt.Printf("%-16s  %d\n", "Input tokens", stats.InputTokens)
		fmt.Printf("%-16s  %d\n", "Output tokens", stats.OutputTokens)
		if spend, ok := estimateSpend(stats.ByModel); ok {
			fmt.Printf("%-16s  $%.4f\n", "Est. spend", spend)
		}

		if len(stats.ByPurpose) > 0 {
			fmt.Println()
			fmt.Println("By Purpose")
			fmt.Println(strings.Repeat("─", 48))
			for purpose, n := range stats.ByPurpose {
				fmt.Printf("%-16s  %d\n", purpose, n)
			}
		}
		return nil
	},
}

// estimateSpend sums the USD cost of the logged tokens per model. Models
// without known pricing are skipped; ok is false when none matched.
func estimateSpend(byModel map[string]store.ModelTokens) (float64, bool) {
	var spend float64
	var matched bool
	for model, tokens := range byModel {
		cost := llm.LookupCost(model)
		if cost == nil {
			continue
		}
		matched = true
		spend += cost.Cost(tokens.InputTokens, tokens.OutputTokens)
	}
	return spend, matched
}
