package store

import (
	"context"
	"database/sql"
	"fmt"
)

// LLMRequestData captures one call to the generative text service.
type LLMRequestData struct {
	SessionID    string
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestStats aggregates the request log for `lexbot stats`.
type RequestStats struct {
	Total        int
	Failed       int
	InputTokens  int
	OutputTokens int
	ByPurpose    map[string]int
	ByModel      map[string]ModelTokens
}

// ModelTokens holds the token totals attributed to one model, the input
// to spend estimation.
type ModelTokens struct {
	InputTokens  int
	OutputTokens int
}

// RequestLog records calls to the generative text service.
type RequestLog interface {
	// Append records an LLM API call.
	Append(ctx context.Context, data LLMRequestData) error

	// Summary aggregates all recorded calls.
	Summary(ctx context.Context) (*RequestStats, error)
}

type requestLog struct {
	db *sql.DB
}

func (l *requestLog) Append(ctx context.Context, data LLMRequestData) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (session_id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

func (l *requestLog) Summary(ctx context.Context) (*RequestStats, error) {
	stats := &RequestStats{
		ByPurpose: make(map[string]int),
		ByModel:   make(map[string]ModelTokens),
	}

	row := l.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0)
		 FROM llm_requests`,
	)
	if err := row.Scan(&stats.Total, &stats.Failed, &stats.InputTokens, &stats.OutputTokens); err != nil {
		return nil, fmt.Errorf("summarize llm requests: %w", err)
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*) FROM llm_requests GROUP BY purpose`,
	)
	if err != nil {
		return nil, fmt.Errorf("group llm requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var purpose string
		var n int
		if err := rows.Scan(&purpose, &n); err != nil {
			return nil, err
		}
		stats.ByPurpose[purpose] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	modelRows, err := l.db.QueryContext(ctx,
		`SELECT model, COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0)
		 FROM llm_requests GROUP BY model`,
	)
	if err != nil {
		return nil, fmt.Errorf("group llm requests by model: %w", err)
	}
	defer modelRows.Close()

	for modelRows.Next() {
		var model string
		var mt ModelTokens
		if err := modelRows.Scan(&model, &mt.InputTokens, &mt.OutputTokens); err != nil {
			return nil, err
		}
		stats.ByModel[model] = mt
	}
	return stats, modelRows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
