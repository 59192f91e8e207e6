package llm

// ModelCost holds per-million-token pricing for a model.
// Prices are in USD per 1 million tokens, sourced from models.dev.
type ModelCost struct {
	InputPerMTok  float64 // USD per 1M input tokens
	OutputPerMTok float64 // USD per 1M output tokens
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model, or nil if unknown. It
// accepts either a resolved model ID or one of the friendly names the
// provider configs use (e.g. "gemini-flash"). Callers: `lexbot llm`
// prints the rates, `lexbot stats` estimates spend from the request log.
func LookupCost(model string) *ModelCost {
	if c, ok := modelCosts[model]; ok {
		return &c
	}
	for _, aliases := range []map[string]string{geminiModels, openaiModels, anthropicModels} {
		if id, ok := aliases[model]; ok {
			if c, ok := modelCosts[id]; ok {
				return &c
			}
		}
	}
	return nil
}

// modelCosts covers the models reachable through the default config maps.
var modelCosts = map[string]ModelCost{
	// Gemini
	"gemini-2.0-flash": {0.1, 0.4},
	"gemini-2.0-pro":   {1.25, 10},

	// OpenAI
	"gpt-4o":      {2.5, 10},
	"gpt-4o-mini": {0.15, 0.6},

	// Anthropic
	"claude-haiku-4-5-20251001": {1, 5},
	"claude-sonnet-4-20250514":  {3, 15},
}
