package quizgen

// Config holds generation limits.
type Config struct {
	// MaxTokens caps the response size.
	MaxTokens int

	// Temperature controls generation randomness.
	Temperature float64
}

// DefaultConfig returns the limits used in production.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.4,
	}
}
