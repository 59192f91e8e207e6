package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = &Schema{
	Name: "test-grade",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scorePercentage": map[string]any{"type": "integer"},
			"overallFeedback": map[string]any{"type": "string"},
		},
		"required": []any{"scorePercentage", "overallFeedback"},
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"scorePercentage": 80, "overallFeedback": "nice"}`)
	require.NoError(t, validateResponse(testSchema, raw))
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	raw := json.RawMessage(`{"scorePercentage": 80}`)
	err := validateResponse(testSchema, raw)
	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, raw, inv.Content, "offending payload kept for inspection")
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`not json`))
	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
}

func TestValidateResponseNilSchema(t *testing.T) {
	require.NoError(t, validateResponse(nil, json.RawMessage(`whatever`)))
}
