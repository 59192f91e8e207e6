package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ryuki04/lexbot/internal/grading"
	"github.com/ryuki04/lexbot/internal/quizgen"
	"github.com/ryuki04/lexbot/internal/store"
	"github.com/ryuki04/lexbot/internal/vocab"
)

// Log is the append-only record of past learning sessions for one user.
// Persistence is read-modify-append-write over the whole list, matching
// the per-user document contract of the backing store.
type Log struct {
	repo    store.HistoryRepo
	userID  string
	entries []Entry
	now     func() time.Time
}

// NewLog creates a Log for the given user. Call Load before reading.
func NewLog(repo store.HistoryRepo, userID string) *Log {
	return &Log{repo: repo, userID: userID, now: time.Now}
}

// Load rehydrates the persisted entries. A missing record is an empty log.
func (l *Log) Load(ctx context.Context) error {
	doc, err := l.repo.Load(ctx, l.userID)
	if err != nil {
		return err
	}
	if doc == nil {
		l.entries = nil
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(doc, &entries); err != nil {
		return fmt.Errorf("decode history document: %w", err)
	}
	l.entries = entries
	return nil
}

// Append records a completed attempt: snapshot of vocabulary, quiz and
// answers under a fresh timestamp. Existing entries are never mutated.
func (l *Log) Append(ctx context.Context, vocabList vocab.List, quiz []quizgen.Item, answers []grading.Answer) (Entry, error) {
	entry := Entry{
		ID:        uuid.NewString(),
		Timestamp: l.now().Format(TimestampLayout),
		Vocab:     vocabList.Clone(),
		Quiz:      append([]quizgen.Item(nil), quiz...),
		Answers:   append([]grading.Answer(nil), answers...),
	}

	// Re-read before writing so a concurrent CLI invocation's entries
	// are not clobbered by the whole-list overwrite.
	if err := l.Load(ctx); err != nil {
		return Entry{}, err
	}
	l.entries = append(l.entries, entry)

	if err := l.save(ctx); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// Entries returns the stored entries in append order.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Display returns the entries for rendering: deduplicated by Identity,
// most recent first. The first occurrence of an identity wins.
func (l *Log) Display() []Entry {
	seen := make(map[string]bool, len(l.entries))
	var out []Entry
	for i := len(l.entries) - 1; i >= 0; i-- {
		id := l.entries[i].Identity()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, l.entries[i])
	}
	return out
}

// Clear removes all entries. This is the one canonical clear path; every
// button and command routes through it.
func (l *Log) Clear(ctx context.Context) error {
	if err := l.repo.Clear(ctx, l.userID); err != nil {
		return err
	}
	l.entries = nil
	return nil
}

func (l *Log) save(ctx context.Context) error {
	doc, err := json.Marshal(l.entries)
	if err != nil {
		return fmt.Errorf("encode history document: %w", err)
	}
	return l.repo.Save(ctx, l.userID, doc)
}
