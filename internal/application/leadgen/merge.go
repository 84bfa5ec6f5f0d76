package leadgen

import (
	"github.com/qwii/qwii-api/internal/domain/entity"
	"github.com/qwii/qwii-api/internal/domain/enum"
)

// BuildLead assembles the persisted lead from the pipeline stages.
// Contact details from the search provider take precedence; anything
// the provider did not supply is filled with synthesized placeholders
// derived from the company name.
func BuildLead(cand Candidate, enrichment Enrichment, scoring Scoring, query string) *entity.Lead {
	synthPhone, synthEmail, synthWebsite := SynthesizeContact(cand.Name)

	phone := synthPhone
	if cand.Phone != nil && *cand.Phone != "" {
		phone = *cand.Phone
	}
	website := synthWebsite
	if cand.Website != nil && *cand.Website != "" {
		website = *cand.Website
	}

	needs := enrichment.PotentialNeeds
	value := enrichment.EstimatedOrderValue
	pitch := enrichment.SalesPitch
	insights := enrichment.AIInsights
	rationale := scoring.Rationale
	confidence := scoring.ConfidenceLevel

	lead := &entity.Lead{
		CompanyName:         cand.Name,
		Email:               &synthEmail,
		Phone:               &phone,
		Website:             &website,
		Industry:            &cand.Industry,
		GooglePlaceID:       cand.PlaceID,
		GoogleRating:        cand.Rating,
		ReviewCount:         cand.Reviews,
		PotentialNeeds:      needs,
		EstimatedOrderValue: &value,
		SalesPitch:          &pitch,
		AIInsights:          &insights,
		Score:               scoring.Score,
		Priority:            enum.LeadPriorityForScore(scoring.Score),
		ConfidenceLevel:     &confidence,
		ScoringRationale:    &rationale,
		Status:              enum.LeadStatusNew,
		Source:              cand.Source,
		SearchQuery:         &query,
	}

	if cand.Address != "" {
		address := cand.Address
		lead.Address = &address
	}
	if cand.City != "" {
		city := cand.City
		lead.City = &city
	}
	if cand.State != "" {
		state := cand.State
		lead.State = &state
	}

	return lead
}
