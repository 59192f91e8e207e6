package quizgen

import (
	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/vocab"
)

// Item is one generated quiz question with its answer key.
type Item struct {
	// Question is the prompt shown to the learner.
	Question string `json:"question"`

	// Options is present only for multiple-choice items, in display order.
	Options []string `json:"options,omitempty"`

	// CorrectAnswer is the expected answer text.
	CorrectAnswer string `json:"correctAnswer"`

	// Hint is an optional nudge shown on request.
	Hint string `json:"hint,omitempty"`
}

// Format describes how the learner answers.
type Format string

const (
	FormatMultipleChoice Format = "multiple_choice"
	FormatFreeText       Format = "free_text"
)

// Label returns the format as shown in the config screen.
func (f Format) Label() string {
	switch f {
	case FormatMultipleChoice:
		return "Multiple choice"
	case FormatFreeText:
		return "Free text"
	}
	return string(f)
}

// Kind is the question context: plain translation or fill-in-the-blank.
type Kind string

const (
	KindTranslation Kind = "translation"
	KindFillBlank   Kind = "fill_blank"
)

// Label returns the kind as shown in the config screen.
func (k Kind) Label() string {
	switch k {
	case KindTranslation:
		return "Translation"
	case KindFillBlank:
		return "Fill in the blank"
	}
	return string(k)
}

// Input holds everything needed to generate a quiz.
type Input struct {
	// Vocab is the learner's word list. Must be non-empty.
	Vocab vocab.List

	// Count is the requested number of items. Must satisfy
	// 1 <= Count <= len(Vocab).
	Count int

	// Format selects multiple-choice or free-text items.
	Format Format

	// Kind selects translation or fill-in-the-blank questions.
	Kind Kind

	// Direction is the source→target language pair.
	Direction i18n.Direction
}
