package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelCostArithmetic(t *testing.T) {
	c := ModelCost{InputPerMTok: 2, OutputPerMTok: 10}
	assert.InDelta(t, 0.007, c.Cost(1_000, 500), 1e-9)
	assert.Zero(t, c.Cost(0, 0))
}

func TestLookupCostResolvesFriendlyNames(t *testing.T) {
	byID := LookupCost("gemini-2.0-flash")
	require.NotNil(t, byID)

	byAlias := LookupCost("gemini-flash")
	require.NotNil(t, byAlias, "friendly config names resolve to priced model IDs")
	assert.Equal(t, *byID, *byAlias)

	assert.Nil(t, LookupCost("some-unknown-model"))
}
