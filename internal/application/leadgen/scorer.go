package leadgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/qwii/qwii-api/internal/domain/enum"
	"github.com/qwii/qwii-api/internal/infrastructure/ai"
	"github.com/qwii/qwii-api/pkg/logger"
	"github.com/qwii/qwii-api/pkg/retry"
)

// Scoring is the qualification verdict for a candidate
type Scoring struct {
	Score           int               `json:"score"`
	Priority        enum.LeadPriority `json:"priority"`
	ConfidenceLevel string            `json:"confidence_level"`
	Rationale       string            `json:"rationale"`
}

// scoringResponse is the shape expected from the scoring model
type scoringResponse struct {
	Score           float64 `json:"score"`
	Priority        string  `json:"priority"`
	ConfidenceLevel string  `json:"confidence_level"`
	Rationale       string  `json:"rationale"`
}

// Scorer assigns a 0-100 qualification score. The score is always
// clamped and the priority tier always recomputed from the clamped
// score, so a provider cannot label a low score hot.
type Scorer struct {
	client ai.CompletionClient
	retry  retry.Policy
}

// NewScorer creates a scorer. A nil client selects the deterministic
// fallback formula.
func NewScorer(client ai.CompletionClient, retryPolicy retry.Policy) *Scorer {
	return &Scorer{
		client: client,
		retry:  retryPolicy,
	}
}

// Score produces a qualification verdict for an enriched candidate.
// The second return value counts outbound model calls made.
func (s *Scorer) Score(ctx context.Context, cand Candidate, enrichment Enrichment) (Scoring, int) {
	if s.client == nil {
		return FallbackScoring(cand.Rating, enrichment.EstimatedOrderValue), 0
	}

	prompt := buildScoringPrompt(cand, enrichment)

	calls := 0
	var raw string
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		calls++
		var callErr error
		raw, callErr = s.client.Complete(ctx, prompt)
		return callErr
	})
	if err != nil {
		logger.Warn().Err(err).Str("company", cand.Name).Msg("scoring call failed, using fallback")
		return FallbackScoring(cand.Rating, enrichment.EstimatedOrderValue), calls
	}

	var resp scoringResponse
	if err := ExtractJSON(raw, &resp); err != nil {
		logger.Warn().Err(err).Str("company", cand.Name).Msg("scoring response unparseable, using fallback")
		return FallbackScoring(cand.Rating, enrichment.EstimatedOrderValue), calls
	}

	score := ClampScore(int(resp.Score))
	confidence := resp.ConfidenceLevel
	if confidence == "" {
		confidence = "medium"
	}

	return Scoring{
		Score:           score,
		Priority:        enum.LeadPriorityForScore(score),
		ConfidenceLevel: confidence,
		Rationale:       resp.Rationale,
	}, calls
}

func buildScoringPrompt(cand Candidate, enrichment Enrichment) string {
	var sb strings.Builder
	sb.WriteString("Score this lead for a custom sticker printing business on a 0-100 scale.\n")
	sb.WriteString(fmt.Sprintf("Business: %s (%s) in %s, %s\n", cand.Name, cand.Industry, cand.City, cand.State))
	if cand.Rating != nil {
		sb.WriteString(fmt.Sprintf("Google rating: %.1f", *cand.Rating))
		if cand.Reviews != nil {
			sb.WriteString(fmt.Sprintf(" (%d reviews)", *cand.Reviews))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Estimated order value: %.0f INR\n", enrichment.EstimatedOrderValue))
	sb.WriteString(fmt.Sprintf("Likely needs: %s\n", strings.Join(enrichment.PotentialNeeds, ", ")))
	sb.WriteString("\nRespond with a single JSON object and nothing else:\n")
	sb.WriteString(`{"score": <0-100>, "priority": "hot|warm|cold", "confidence_level": "high|medium|low", "rationale": "..."}`)
	return sb.String()
}

// FallbackScoring derives a deterministic score from the rating and
// estimated order value: rating times ten plus up to fifty points from
// order value. Missing rating counts as 3.0, missing value as 10000.
func FallbackScoring(rating *float64, orderValue float64) Scoring {
	r := 3.0
	if rating != nil {
		r = *rating
	}
	v := orderValue
	if v <= 0 {
		v = 10000
	}

	valuePoints := v / 1000
	if valuePoints > 50 {
		valuePoints = 50
	}

	score := ClampScore(int(r*10 + valuePoints))
	return Scoring{
		Score:           score,
		Priority:        enum.LeadPriorityForScore(score),
		ConfidenceLevel: "low",
		Rationale:       "Heuristic score from rating and estimated order value",
	}
}

// ClampScore bounds a score to [0,100]
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
