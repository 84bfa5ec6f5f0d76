package leadgen

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"

	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/pkg/retry"
)

// fakeCompletionClient returns a canned response or error and counts calls.
type fakeCompletionClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(s string) *string     { return &s }

func TestScoreClampsAndRecomputesPriority(t *testing.T) {
	client := &fakeCompletionClient{
		response: `{"score": 150, "priority": "cold", "confidence_level": "high", "rationale": "strong fit"}`,
	}
	scorer := NewScorer(client, retry.Policy{MaxAttempts: 1})

	scoring, calls := scorer.Score(context.Background(), Candidate{Name: "Spice Garden"}, Enrichment{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 100, scoring.Score)
	// The provider's "cold" label is discarded; 100 is hot.
	assert.Equal(t, enum.LeadPriorityHot, scoring.Priority)
	assert.Equal(t, "high", scoring.ConfidenceLevel)
	assert.Equal(t, "strong fit", scoring.Rationale)
}

func TestScorePriorityTiers(t *testing.T) {
	tests := []struct {
		score    int
		priority enum.LeadPriority
	}{
		{85, enum.LeadPriorityHot},
		{80, enum.LeadPriorityHot},
		{65, enum.LeadPriorityWarm},
		{50, enum.LeadPriorityWarm},
		{20, enum.LeadPriorityCold},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.priority, enum.LeadPriorityForScore(tt.score), "score %d", tt.score)
	}
}

func TestScoreNilClientUsesFallback(t *testing.T) {
	scorer := NewScorer(nil, retry.Policy{MaxAttempts: 1})

	scoring, calls := scorer.Score(context.Background(), Candidate{Rating: floatPtr(4.0)}, Enrichment{EstimatedOrderValue: 20000})

	assert.Equal(t, 0, calls)
	assert.Equal(t, 60, scoring.Score)
	assert.Equal(t, enum.LeadPriorityWarm, scoring.Priority)
	assert.Equal(t, "low", scoring.ConfidenceLevel)
}

func TestScoreUnparseableResponseUsesFallback(t *testing.T) {
	client := &fakeCompletionClient{response: "I would rate this business favourably."}
	scorer := NewScorer(client, retry.Policy{MaxAttempts: 1})

	scoring, calls := scorer.Score(context.Background(), Candidate{Rating: floatPtr(3.5)}, Enrichment{EstimatedOrderValue: 15000})

	assert.Equal(t, 1, calls)
	assert.Equal(t, "low", scoring.ConfidenceLevel)
	assert.Equal(t, 50, scoring.Score) // 3.5*10 + 15
}

func TestScoreErrorUsesFallbackAfterSingleAttempt(t *testing.T) {
	client := &fakeCompletionClient{err: eris.New("quota exceeded")}
	scorer := NewScorer(client, retry.Policy{MaxAttempts: 1})

	scoring, calls := scorer.Score(context.Background(), Candidate{}, Enrichment{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, "low", scoring.ConfidenceLevel)
}

func TestScoreDefaultsConfidenceToMedium(t *testing.T) {
	client := &fakeCompletionClient{response: `{"score": 55, "rationale": "ok"}`}
	scorer := NewScorer(client, retry.Policy{MaxAttempts: 1})

	scoring, _ := scorer.Score(context.Background(), Candidate{}, Enrichment{})

	assert.Equal(t, "medium", scoring.ConfidenceLevel)
}

func TestFallbackScoringDefaults(t *testing.T) {
	// Missing rating counts as 3.0, non-positive value as 10000.
	scoring := FallbackScoring(nil, 0)

	assert.Equal(t, 40, scoring.Score) // 3.0*10 + 10
	assert.Equal(t, enum.LeadPriorityCold, scoring.Priority)
}

func TestFallbackScoringValuePointsCapped(t *testing.T) {
	scoring := FallbackScoring(floatPtr(5.0), 500000)

	assert.Equal(t, 100, scoring.Score) // 50 + capped 50
	assert.Equal(t, enum.LeadPriorityHot, scoring.Priority)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 0, ClampScore(0))
	assert.Equal(t, 73, ClampScore(73))
	assert.Equal(t, 100, ClampScore(100))
	assert.Equal(t, 100, ClampScore(250))
}
