package history

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ryuki04/lexbot/internal/grading"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/vocab"
)

// TimestampLayout is the creation-time format stored on entries.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is an immutable record of one completed quiz attempt.
type Entry struct {
	ID        string           `json:"id,omitempty"`
	Timestamp string           `json:"timestamp"`
	Vocab     vocab.List       `json:"vocab"`
	Quiz      []quizgen.Item   `json:"quiz"`
	Answers   []grading.Answer `json:"answers"`
}

// Identity is the deduplication key: entries with the same timestamp and
// the same word set (order ignored) are considered duplicates.
func (e Entry) Identity() string {
	h := sha256.New()
	h.Write([]byte(e.Timestamp))
	h.Write([]byte("\n"))
	h.Write([]byte(strings.Join(e.Vocab.Sorted(), ",")))
	return hex.EncodeToString(h.Sum(nil))
}

// answeredCorrectly compares a submitted answer against the stored
// answer key: case-insensitive, surrounding whitespace ignored.
func answeredCorrectly(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// correctAt reports the derived correctness of item i. Indexes without a
// stored answer count as incorrect.
func (e Entry) correctAt(i int) bool {
	if i >= len(e.Answers) {
		return false
	}
	return answeredCorrectly(e.Answers[i].Answer, e.Quiz[i].CorrectAnswer)
}

// Score recomputes the percentage of correct items from the stored quiz
// and answers. An entry with no items scores 0.
func (e Entry) Score() int {
	total := len(e.Quiz)
	if total == 0 {
		return 0
	}
	correct := 0
	for i := range e.Quiz {
		if e.correctAt(i) {
			correct++
		}
	}
	return 100 * correct / total
}

// IncorrectWords returns the vocabulary words whose items were answered
// incorrectly, in original encounter order. Used by "redo incorrect".
func (e Entry) IncorrectWords() vocab.List {
	var out vocab.List
	for i := range e.Quiz {
		if i >= len(e.Vocab) {
			break
		}
		if !e.correctAt(i) {
			out = append(out, e.Vocab[i])
		}
	}
	return out
}
