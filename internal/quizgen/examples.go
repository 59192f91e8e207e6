package quizgen

// Worked example blocks steer the model toward the exact output shape.
// Keyed by format, kind and language pair; unsupported combinations fall
// back to no example, which the prompt tolerates.

type exampleKey struct {
	Format Format
	Kind   Kind
	Pair   string
}

var workedExamples = map[exampleKey]string{
	{FormatMultipleChoice, KindTranslation, "en-ja"}: `[
  {"question": "What is the Japanese meaning of \"apple\"?", "options": ["りんご", "みかん", "ぶどう", "もも"], "correctAnswer": "りんご", "hint": "A red fruit."}
]`,
	{FormatFreeText, KindTranslation, "en-ja"}: `[
  {"question": "Write the Japanese meaning of \"apple\".", "correctAnswer": "りんご", "hint": "A red fruit."}
]`,
	{FormatMultipleChoice, KindTranslation, "ja-en"}: `[
  {"question": "What is the English meaning of \"りんご\"?", "options": ["apple", "orange", "grape", "peach"], "correctAnswer": "apple"}
]`,
	{FormatFreeText, KindTranslation, "ja-en"}: `[
  {"question": "Write the English meaning of \"りんご\".", "correctAnswer": "apple"}
]`,
	{FormatMultipleChoice, KindFillBlank, "en-ja"}: `[
  {"question": "I ate an ___ for breakfast. (りんご)", "options": ["apple", "orange", "grape", "peach"], "correctAnswer": "apple"}
]`,
	{FormatFreeText, KindFillBlank, "en-ja"}: `[
  {"question": "I ate an ___ for breakfast. (りんご)", "correctAnswer": "apple"}
]`,
	{FormatMultipleChoice, KindTranslation, "en-es"}: `[
  {"question": "What is the Spanish meaning of \"apple\"?", "options": ["manzana", "naranja", "uva", "pera"], "correctAnswer": "manzana"}
]`,
	{FormatFreeText, KindTranslation, "en-es"}: `[
  {"question": "Write the Spanish meaning of \"apple\".", "correctAnswer": "manzana"}
]`,
}

// lookupExample returns the worked example for the given combination,
// or "" when the combination has no authored example.
func lookupExample(format Format, kind Kind, pair string) string {
	return workedExamples[exampleKey{Format: format, Kind: kind, Pair: pair}]
}
