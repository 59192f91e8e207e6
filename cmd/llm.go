package cmd

import (
	"fmt"

	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the resolved LLM provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				fmt.Println("No LLM provider configured.")
				fmt.Println("Set one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY,")
				fmt.Println("or use the LEXBOT_* variables for explicit configuration.")
				return nil
			}
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		switch cfg.Provider {
		case "gemini":
			fmt.Printf("Model:     %s\n", cfg.Gemini.Model)
		case "openai":
			fmt.Printf("Model:     %s\n", cfg.OpenAI.Model)
			if cfg.OpenAI.BaseURL != "" {
				fmt.Printf("Base URL:  %s\n", cfg.OpenAI.BaseURL)
			}
		case "anthropic":
			fmt.Printf("Model:     %s\n", cfg.Anthropic.Model)
		case "openrouter":
			fmt.Printf("Model:     %s\n", cfg.OpenRouter.Model)
		}
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		fmt.Printf("Retries:   %d\n", cfg.Retry.MaxAttempts)

		if cost := costForConfig(cfg); cost != nil {
			fmt.Printf("Pricing:   $%.2f/M in, $%.2f/M out\n", cost.InputPerMTok, cost.OutputPerMTok)
		}
		return nil
	},
}

func costForConfig(cfg llm.Config) *llm.ModelCost {
	switch cfg.Provider {
	case "gemini":
		return llm.LookupCost(cfg.Gemini.Model)
	case "openai":
		return llm.LookupCost(cfg.OpenAI.Model)
	case "anthropic":
		return llm.LookupCost(cfg.Anthropic.Model)
	case "openrouter":
		return llm.LookupCost(cfg.OpenRouter.Model)
	}
	return nil
}
