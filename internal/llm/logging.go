package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ryuki04/lexbot/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// store's request log.
type LoggingProvider struct {
	inner Provider
	log   store.RequestLog

	// SessionID groups the requests of one TUI run.
	SessionID string
}

// WithLogging wraps a Provider with request logging. Each wrapper gets
// its own session ID, one per TUI run.
func WithLogging(p Provider, log store.RequestLog) Provider {
	return &LoggingProvider{inner: p, log: log, SessionID: uuid.NewString()}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestData{
		SessionID: l.SessionID,
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the request if logging fails.
	if l.log != nil {
		if logErr := l.log.Append(ctx, data); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
