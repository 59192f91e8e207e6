package grading

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/llm"
	"github.com/ryuki04/lexbot/internal/quizgen"
)

// Config holds grading limits.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the limits used in production.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// Grader scores submitted quizzes using an LLM provider.
type Grader struct {
	provider llm.Provider
	config   Config
}

// New creates a Grader with the given provider and config.
func New(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, config: cfg}
}

// gradeOutput mirrors Result with pointer fields so a syntactically
// valid response missing a required field is still caught.
type gradeOutput struct {
	ScorePercentage *int            `json:"scorePercentage"`
	Incorrect       []IncorrectItem `json:"incorrect"`
	OverallFeedback *string         `json:"overallFeedback"`
}

// Grade scores the quiz against the positionally aligned answers.
//
// A quota or transport failure returns (nil, err): nothing is committed
// and the session stays where it is. An undecodable response returns the
// failure sentinel together with an *ErrDecode so the caller can commit
// the sentinel and still surface a notice.
func (g *Grader) Grade(ctx context.Context, quiz []quizgen.Item, answers []Answer, feedbackLang i18n.Lang) (*Result, error) {
	if len(quiz) == 0 {
		return nil, fmt.Errorf("no quiz to grade")
	}
	if len(answers) != len(quiz) {
		return nil, fmt.Errorf("answer count %d does not match quiz size %d", len(answers), len(quiz))
	}

	ctx = llm.WithPurpose(ctx, "grading")

	userMsg, err := buildUserMessage(quiz, answers, feedbackLang)
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GradeSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading failed: %w", err)
	}

	payload := llm.ExtractJSON(string(resp.Content))

	var out gradeOutput
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return FailureResult(), &ErrDecode{Raw: resp.Content, Err: err}
	}
	if out.ScorePercentage == nil || out.OverallFeedback == nil {
		return FailureResult(), &ErrDecode{
			Raw: resp.Content,
			Err: fmt.Errorf("response missing scorePercentage or overallFeedback"),
		}
	}

	res := &Result{
		ScorePercentage: *out.ScorePercentage,
		Incorrect:       out.Incorrect,
		OverallFeedback: *out.OverallFeedback,
	}
	if res.Incorrect == nil {
		res.Incorrect = []IncorrectItem{}
	}
	return res, nil
}
