package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ryuki04/lexbot/internal/llm"
)

// Generator produces vocabulary quizzes using an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// rawItem is the LLM response shape before repair and validation.
type rawItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Hint          string   `json:"hint"`
}

// Generate produces a validated quiz for the given input. Nothing is
// committed on failure: a quota, parse or repair error leaves the caller
// free to stay on the config screen.
func (g *Generator) Generate(ctx context.Context, input Input) ([]Item, error) {
	if len(input.Vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}
	if input.Count < 1 || input.Count > len(input.Vocab) {
		return nil, ErrBadCount
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	payload := llm.ExtractJSON(string(resp.Content))

	var raw []rawItem
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse quiz: %w", err),
		}
	}

	return normalize(raw, input)
}

// normalize converts raw items into Items, repairing missing questions
// from the positional vocabulary word. A missing question with no word
// at that index, or a missing answer key, rejects the whole quiz.
func normalize(raw []rawItem, input Input) ([]Item, error) {
	if len(raw) == 0 {
		return nil, &llm.ErrInvalidResponse{
			Err: fmt.Errorf("quiz response contained no items"),
		}
	}

	items := make([]Item, 0, len(raw))
	for i, r := range raw {
		if r.CorrectAnswer == "" {
			return nil, &llm.ErrInvalidResponse{
				Err: fmt.Errorf("item %d missing correctAnswer", i),
			}
		}

		question := r.Question
		if question == "" {
			if i >= len(input.Vocab) {
				return nil, fmt.Errorf("item %d: %w", i, ErrUnrepairable)
			}
			question = repairedQuestion(input.Vocab[i], input.Direction.To.Name())
		}

		items = append(items, Item{
			Question:      question,
			Options:       r.Options,
			CorrectAnswer: r.CorrectAnswer,
			Hint:          r.Hint,
		})
	}
	return items, nil
}

// repairedQuestion synthesizes a question for a vocabulary word when the
// model omitted one.
func repairedQuestion(word, targetLang string) string {
	return fmt.Sprintf("What is the %s meaning of %q?", targetLang, word)
}
