package grading

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ryuki04/lexbot/internal/i18n"
	"github.com/ryuki04/lexbot/internal/quizgen"
)

const systemPrompt = `You are grading a vocabulary quiz for a language learner.

Rules:
- Compare each submitted answer against the item's correctAnswer. Accept answers that differ only in case, surrounding whitespace, or trivial politeness particles.
- Compute scorePercentage as the whole-number percentage of correct answers.
- For every missed item, include: the question, the learner's answer, what the learner's answer actually means, the correct answer, what the correct answer means, and one sentence of feedback.
- Write all meanings and feedback in the requested feedback language.
- End with short, encouraging overallFeedback in the requested feedback language.
- Output a single pure JSON object with the fields scorePercentage, incorrect, overallFeedback. No prose, no markdown fence.`

// buildUserMessage embeds the quiz and answers as structured data so the
// model grades exactly what the learner saw.
func buildUserMessage(quiz []quizgen.Item, answers []Answer, feedbackLang i18n.Lang) (string, error) {
	quizJSON, err := json.Marshal(quiz)
	if err != nil {
		return "", fmt.Errorf("marshal quiz: %w", err)
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}

	var b strings.Builder
	b.WriteString("Quiz:\n")
	b.Write(quizJSON)
	b.WriteString("\n\nSubmitted answers (aligned by index):\n")
	b.Write(answersJSON)
	fmt.Fprintf(&b, "\n\nFeedback language: %s\n", feedbackLang.Name())
	b.WriteString("\nRespond with the JSON object only.")
	return b.String(), nil
}
