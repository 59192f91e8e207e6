package i18n

// Lang is an ISO 639-1 language code.
type Lang string

const (
	English  Lang = "en"
	Japanese Lang = "ja"
	Spanish  Lang = "es"
)

// Name returns the English display name of the language.
func (l Lang) Name() string {
	switch l {
	case English:
		return "English"
	case Japanese:
		return "Japanese"
	case Spanish:
		return "Spanish"
	}
	return string(l)
}

// Direction is a source→target language pair. Quiz prompts, flashcard
// translations and worked-example lookups are all keyed off this, never
// off a display label.
type Direction struct {
	From Lang
	To   Lang
}

// Pair returns the canonical "from-to" key, e.g. "en-ja".
func (d Direction) Pair() string {
	return string(d.From) + "-" + string(d.To)
}

// Label returns the direction as shown in the config screen.
func (d Direction) Label() string {
	return d.From.Name() + " → " + d.To.Name()
}

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction {
	return Direction{From: d.To, To: d.From}
}

// Directions lists the supported study directions, in menu order.
var Directions = []Direction{
	{From: English, To: Japanese},
	{From: Japanese, To: English},
	{From: English, To: Spanish},
	{From: Spanish, To: English},
}

// DefaultDirection is English to Japanese.
var DefaultDirection = Directions[0]
