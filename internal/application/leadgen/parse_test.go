package leadgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONDirect(t *testing.T) {
	var out struct {
		Score int `json:"score"`
	}

	err := ExtractJSON(`{"score": 85}`, &out)

	require.NoError(t, err)
	assert.Equal(t, 85, out.Score)
}

func TestExtractJSONMarkdownFence(t *testing.T) {
	raw := "```json\n{\"score\": 42}\n```"

	var out struct {
		Score int `json:"score"`
	}

	err := ExtractJSON(raw, &out)

	require.NoError(t, err)
	assert.Equal(t, 42, out.Score)
}

func TestExtractJSONEmbeddedInProse(t *testing.T) {
	raw := "Sure, here is the assessment you asked for:\n{\"score\": 70, \"priority\": \"warm\"}\nLet me know if you need anything else."

	var out struct {
		Score    int    `json:"score"`
		Priority string `json:"priority"`
	}

	err := ExtractJSON(raw, &out)

	require.NoError(t, err)
	assert.Equal(t, 70, out.Score)
	assert.Equal(t, "warm", out.Priority)
}

func TestExtractJSONNoObject(t *testing.T) {
	var out struct{}

	err := ExtractJSON("I cannot help with that.", &out)

	assert.Error(t, err)
}
