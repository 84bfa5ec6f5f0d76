package leadgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwii/qwii-api/internal/domain/enum"
)

func TestBuildLeadProviderContactWins(t *testing.T) {
	cand := Candidate{
		PlaceID:  "p1",
		Name:     "Daily Bread",
		Address:  "12 MG Road, Pune",
		City:     "Pune",
		State:    "Maharashtra",
		Industry: "bakery",
		Phone:    strPtr("020 1234 5678"),
		Website:  strPtr("https://dailybread.example"),
		Source:   SourceGoogleMaps,
	}
	enrichment := FallbackEnrichment(cand.Name)
	scoring := Scoring{Score: 82, ConfidenceLevel: "high", Rationale: "strong"}

	lead := BuildLead(cand, enrichment, scoring, "bakery in Pune")

	require.NotNil(t, lead.Phone)
	assert.Equal(t, "020 1234 5678", *lead.Phone)
	require.NotNil(t, lead.Website)
	assert.Equal(t, "https://dailybread.example", *lead.Website)
	// Email is always synthesized; the search provider never returns one.
	require.NotNil(t, lead.Email)
	assert.Equal(t, "info@dailybread.com", *lead.Email)

	assert.Equal(t, "p1", lead.GooglePlaceID)
	assert.Equal(t, enum.LeadStatusNew, lead.Status)
	assert.Equal(t, enum.LeadPriorityHot, lead.Priority)
	assert.Equal(t, 82, lead.Score)
	assert.Equal(t, SourceGoogleMaps, lead.Source)
	require.NotNil(t, lead.SearchQuery)
	assert.Equal(t, "bakery in Pune", *lead.SearchQuery)
	require.NotNil(t, lead.Address)
	assert.Equal(t, "12 MG Road, Pune", *lead.Address)
}

func TestBuildLeadSynthesizesMissingContact(t *testing.T) {
	cand := Candidate{
		PlaceID:  "p2",
		Name:     "Cake Walk",
		Industry: "bakery",
		Source:   SourceSynthetic,
	}

	lead := BuildLead(cand, FallbackEnrichment(cand.Name), Scoring{Score: 40}, "bakery in Pune")

	phone, email, website := SynthesizeContact("Cake Walk")
	require.NotNil(t, lead.Phone)
	assert.Equal(t, phone, *lead.Phone)
	require.NotNil(t, lead.Email)
	assert.Equal(t, email, *lead.Email)
	require.NotNil(t, lead.Website)
	assert.Equal(t, website, *lead.Website)

	assert.Equal(t, enum.LeadPriorityCold, lead.Priority)
	assert.Nil(t, lead.Address)
	assert.Nil(t, lead.City)
	assert.Nil(t, lead.State)
}

func TestBuildLeadCarriesEnrichmentAndScoring(t *testing.T) {
	enrichment := Enrichment{
		PotentialNeeds:      []string{"Box labels"},
		EstimatedOrderValue: 25000,
		SalesPitch:          "pitch",
		AIInsights:          "insights",
	}
	scoring := Scoring{Score: 65, ConfidenceLevel: "medium", Rationale: "decent rating"}

	lead := BuildLead(Candidate{Name: "Cafe Aroma", PlaceID: "p3"}, enrichment, scoring, "q")

	assert.Equal(t, []string{"Box labels"}, lead.PotentialNeeds)
	require.NotNil(t, lead.EstimatedOrderValue)
	assert.Equal(t, float64(25000), *lead.EstimatedOrderValue)
	require.NotNil(t, lead.SalesPitch)
	assert.Equal(t, "pitch", *lead.SalesPitch)
	require.NotNil(t, lead.ScoringRationale)
	assert.Equal(t, "decent rating", *lead.ScoringRationale)
	require.NotNil(t, lead.ConfidenceLevel)
	assert.Equal(t, "medium", *lead.ConfidenceLevel)
	assert.Equal(t, enum.LeadPriorityWarm, lead.Priority)
}
