package quizgen

import "errors"

// ErrEmptyVocabulary means generation was requested with no words.
// Callers disable the triggering action instead of invoking the service,
// but the orchestrator still refuses.
var ErrEmptyVocabulary = errors.New("vocabulary is empty")

// ErrBadCount means the requested item count falls outside 1..len(vocab).
var ErrBadCount = errors.New("item count must be between 1 and the vocabulary size")

// ErrUnrepairable means an item came back without a question and there
// was no vocabulary word at its position to synthesize one from. The
// whole quiz is rejected.
var ErrUnrepairable = errors.New("quiz item missing question with no vocabulary word to repair from")
