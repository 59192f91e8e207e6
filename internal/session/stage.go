package session

// Stage names a screen of the learning session.
type Stage string

const (
	StageSelectInput Stage = "select-input"
	StageHowto       Stage = "howto"
	StageInput       Stage = "input"
	StageConfig      Stage = "config"
	StageQuiz        Stage = "quiz"
	StageResults     Stage = "results"
	StageFlashcard   Stage = "flashcard"
	StageHistory     Stage = "history"
)

// StageInputWords is a legacy alias for StageInput. It is pushed as an
// explicit marker when history is entered from the word-input screen and
// remapped to StageInput on pop. It is never the current stage.
const StageInputWords Stage = "input_words"

// InputMode decides where the session goes after word collection.
type InputMode int

const (
	ModeTest InputMode = iota
	ModeFlashcard
)

func (m InputMode) String() string {
	if m == ModeFlashcard {
		return "flashcard"
	}
	return "test"
}
