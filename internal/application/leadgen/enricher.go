package leadgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/qwii/qwii-api/internal/infrastructure/ai"
	"github.com/qwii/qwii-api/pkg/logger"
	"github.com/qwii/qwii-api/pkg/retry"
)

// Estimated order values are clamped to this band regardless of what
// the model claims.
const (
	minOrderValue = 5000
	maxOrderValue = 100000
)

// Enrichment is the sales context attached to a candidate
type Enrichment struct {
	PotentialNeeds      []string `json:"potential_sticker_needs"`
	EstimatedOrderValue float64  `json:"estimated_order_value"`
	SalesPitch          string   `json:"sales_pitch"`
	AIInsights          string   `json:"ai_insights"`
}

// Enricher asks a language model what a business likely needs and how
// to pitch it. Without a client, or when the model response cannot be
// used, it falls back to a fixed generic enrichment so the pipeline
// never stalls on one candidate.
type Enricher struct {
	client ai.CompletionClient
	retry  retry.Policy
}

// NewEnricher creates an enricher. A nil client selects fallback-only mode.
func NewEnricher(client ai.CompletionClient, retryPolicy retry.Policy) *Enricher {
	return &Enricher{
		client: client,
		retry:  retryPolicy,
	}
}

// Enrich produces sales context for a candidate. The second return
// value counts outbound model calls made.
func (e *Enricher) Enrich(ctx context.Context, cand Candidate) (Enrichment, int) {
	if e.client == nil {
		return FallbackEnrichment(cand.Name), 0
	}

	prompt := buildEnrichmentPrompt(cand)

	calls := 0
	var raw string
	err := e.retry.Do(ctx, func(ctx context.Context) error {
		calls++
		var callErr error
		raw, callErr = e.client.Complete(ctx, prompt)
		return callErr
	})
	if err != nil {
		logger.Warn().Err(err).Str("company", cand.Name).Msg("enrichment call failed, using fallback")
		return FallbackEnrichment(cand.Name), calls
	}

	var enrichment Enrichment
	if err := ExtractJSON(raw, &enrichment); err != nil {
		logger.Warn().Err(err).Str("company", cand.Name).Msg("enrichment response unparseable, using fallback")
		return FallbackEnrichment(cand.Name), calls
	}

	if len(enrichment.PotentialNeeds) == 0 {
		enrichment.PotentialNeeds = FallbackEnrichment(cand.Name).PotentialNeeds
	}
	enrichment.EstimatedOrderValue = ClampOrderValue(enrichment.EstimatedOrderValue)
	if enrichment.SalesPitch == "" {
		enrichment.SalesPitch = FallbackEnrichment(cand.Name).SalesPitch
	}
	if enrichment.AIInsights == "" {
		enrichment.AIInsights = FallbackEnrichment(cand.Name).AIInsights
	}

	return enrichment, calls
}

func buildEnrichmentPrompt(cand Candidate) string {
	var sb strings.Builder
	sb.WriteString("You are a B2B sales analyst for a custom sticker and label printing company.\n")
	sb.WriteString(fmt.Sprintf("Business: %s\nIndustry: %s\nLocation: %s, %s\n", cand.Name, cand.Industry, cand.City, cand.State))
	if cand.Rating != nil {
		sb.WriteString(fmt.Sprintf("Google rating: %.1f\n", *cand.Rating))
	}
	sb.WriteString("\nRespond with a single JSON object and nothing else:\n")
	sb.WriteString(`{"potential_sticker_needs": ["..."], "estimated_order_value": <number between 5000 and 100000 in INR>, "sales_pitch": "...", "ai_insights": "..."}`)
	return sb.String()
}

// FallbackEnrichment is the generic enrichment used when no model is
// configured or the response is unusable.
func FallbackEnrichment(companyName string) Enrichment {
	return Enrichment{
		PotentialNeeds:      []string{"Product labels", "Branding stickers", "Packaging stickers"},
		EstimatedOrderValue: 15000,
		SalesPitch:          fmt.Sprintf("Hi %s team, we help businesses like yours stand out with custom printed labels and stickers. Can we share some samples?", companyName),
		AIInsights:          fmt.Sprintf("%s is a potential customer for standard branding and packaging materials.", companyName),
	}
}

// ClampOrderValue bounds an estimated order value to the allowed band
func ClampOrderValue(value float64) float64 {
	if value < minOrderValue {
		return minOrderValue
	}
	if value > maxOrderValue {
		return maxOrderValue
	}
	return value
}

// SynthesizeContact derives stable placeholder contact details from the
// company name. The same name always yields the same contact, so reruns
// do not churn stored leads.
func SynthesizeContact(companyName string) (phone, email, website string) {
	domain := strings.ToLower(companyName)
	domain = strings.ReplaceAll(domain, " ", "")
	domain = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, domain)
	if domain == "" {
		domain = "business"
	}

	digits := hashString(companyName) % 1000000000
	phone = fmt.Sprintf("+91 9%09d", digits)
	email = "info@" + domain + ".com"
	website = "https://www." + domain + ".com"
	return phone, email, website
}
