package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the generative text service. Quiz generation,
// grading and flashcard translation all run through this one interface,
// which keeps the orchestrators testable against the mock.
type Provider interface {
	// Generate sends one request and returns the model's output. When the
	// request carries a Schema the provider asks for structured output and
	// the returned Content is the schema-validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single generation call. LexBot only ever does single-turn
// generation, so Messages holds one user message in practice.
type Request struct {
	// System sets the model's role and constraints.
	System string

	Messages []Message

	// Schema, when set, selects the provider's native structured output
	// mechanism. When nil the Content comes back as raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and describes the JSON shape expected back from the
// model. Name doubles as the tool name for Anthropic and the schema name
// for OpenAI, so keep it kebab-case ("vocab-quiz", "grade-result").
type Schema struct {
	Name        string
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise raw text.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request, which may be
	// more specific than the configured ModelID.
	Model string

	// StopReason is normalized across providers to one of
	// "end", "max_tokens" or "error".
	StopReason string
}

// Usage is the token accounting for one request, persisted by the
// logging decorator and summarized by `lexbot stats`.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
