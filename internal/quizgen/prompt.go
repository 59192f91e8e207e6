package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a vocabulary quiz writer for language learners.

Rules:
- Generate exactly the requested number of quiz items, one per given word, in the given word order.
- Questions test the meaning of the source word in the target language.
- For "multiple_choice" format, provide exactly 4 options where exactly one is correct. Distractors should be plausible words of the same category, not random strings.
- For "free_text" format, omit the options field entirely.
- For "fill_blank" kind, the question is a natural sentence with the word blanked out as ___.
- The correctAnswer must be a single word or short phrase, not a sentence.
- Include a short hint when one is genuinely helpful; otherwise omit it.
- Output a pure JSON array matching the example shape. No prose, no markdown fence.`

// buildUserMessage constructs the generation request from the input.
func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Words (%s): %s\n", input.Direction.From.Name(), strings.Join(input.Vocab, ", "))
	fmt.Fprintf(&b, "Number of items: %d\n", input.Count)
	fmt.Fprintf(&b, "Format: %s\n", input.Format)
	fmt.Fprintf(&b, "Kind: %s\n", input.Kind)
	fmt.Fprintf(&b, "Source language: %s\n", input.Direction.From.Name())
	fmt.Fprintf(&b, "Target language: %s\n", input.Direction.To.Name())

	if ex := lookupExample(input.Format, input.Kind, input.Direction.Pair()); ex != "" {
		b.WriteString("\nExample output:\n")
		b.WriteString(ex)
		b.WriteString("\n")
	}

	b.WriteString("\nRespond with the JSON array only.")
	return b.String()
}
