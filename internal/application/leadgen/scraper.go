package leadgen

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/qwii/qwii-api/internal/infrastructure/places"
	"github.com/qwii/qwii-api/pkg/retry"
)

// Source labels recorded on each lead
const (
	SourceGoogleMaps = "google_maps"
	SourceSynthetic  = "synthetic"
)

const maxScrapeLimit = 20

// Candidate is a raw business found by the scraper, before enrichment
// and scoring.
type Candidate struct {
	PlaceID  string
	Name     string
	Address  string
	City     string
	State    string
	Industry string
	Rating   *float64
	Reviews  *int
	Website  *string
	Phone    *string
	Source   string
}

// Scraper finds business candidates for an industry and location. With
// a Places client it searches the real index; without one it generates
// synthetic candidates from the static catalog.
type Scraper struct {
	places places.Client
	retry  retry.Policy
}

// NewScraper creates a scraper. A nil places client selects the
// synthetic generator.
func NewScraper(placesClient places.Client, retryPolicy retry.Policy) *Scraper {
	return &Scraper{
		places: placesClient,
		retry:  retryPolicy,
	}
}

// BuildQuery renders the text search query for an industry and location
func BuildQuery(industry, location string) string {
	return fmt.Sprintf("%s in %s", industry, location)
}

// Scrape returns up to limit candidates for the industry and location,
// running one search per keyword and deduplicating by place ID across
// keywords. Empty keywords default to the industry itself. The second
// return value counts outbound search calls made.
func (s *Scraper) Scrape(ctx context.Context, industry, location string, keywords []string, limit int) ([]Candidate, int, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxScrapeLimit {
		limit = maxScrapeLimit
	}
	if len(keywords) == 0 {
		keywords = []string{industry}
	}

	if s.places == nil {
		return s.generate(industry, location, limit), 0, nil
	}

	city, state := splitLocation(location)
	seen := make(map[string]bool)
	candidates := make([]Candidate, 0, limit)
	calls := 0

	for _, keyword := range keywords {
		if len(candidates) >= limit {
			break
		}

		query := BuildQuery(keyword, location)
		var resp *places.TextSearchResponse
		err := s.retry.Do(ctx, func(ctx context.Context) error {
			var callErr error
			resp, callErr = s.places.TextSearch(ctx, query, limit-len(candidates))
			return callErr
		})
		calls++
		if err != nil {
			return nil, calls, err
		}

		for _, place := range resp.Places {
			if len(candidates) >= limit {
				break
			}
			if seen[place.ID] {
				continue
			}
			seen[place.ID] = true

			cand := Candidate{
				PlaceID:  place.ID,
				Name:     place.DisplayName.Text,
				Address:  place.FormattedAddress,
				City:     city,
				State:    state,
				Industry: industry,
				Source:   SourceGoogleMaps,
			}
			if place.Rating > 0 {
				rating := place.Rating
				cand.Rating = &rating
			}
			if place.UserRatingCount > 0 {
				reviews := place.UserRatingCount
				cand.Reviews = &reviews
			}
			if place.WebsiteURI != "" {
				website := place.WebsiteURI
				cand.Website = &website
			}
			if place.NationalPhoneNumber != "" {
				phone := place.NationalPhoneNumber
				cand.Phone = &phone
			}
			candidates = append(candidates, cand)
		}
	}

	return candidates, calls, nil
}

// generate builds deterministic synthetic candidates from the static
// catalog. Place IDs are hashes of the name and city so reruns dedupe
// against previously stored leads.
func (s *Scraper) generate(industry, location string, limit int) []Candidate {
	names := namesForIndustry(industry)
	city := location
	state := ""
	areas := []string{""}
	if info, ok := citiesByName[location]; ok {
		state = info.State
		areas = info.Areas
	}

	candidates := make([]Candidate, 0, limit)
	for i := 0; i < limit; i++ {
		base := names[i%len(names)]
		name := base
		if i >= len(names) {
			prefix := businessPrefixes[(i/len(names)-1)%len(businessPrefixes)]
			name = prefix + " " + base
		}
		area := areas[i%len(areas)]

		address := city
		if area != "" {
			address = area + ", " + city
		}
		if state != "" {
			address += ", " + state
		}

		rating := 3.0 + float64(hashString(name+city)%21)/10.0 // 3.0 to 5.0
		reviews := 10 + int(hashString(city+name)%490)

		candidates = append(candidates, Candidate{
			PlaceID:  fmt.Sprintf("syn-%x", hashString(name+"|"+city)),
			Name:     name,
			Address:  address,
			City:     city,
			State:    state,
			Industry: industry,
			Rating:   &rating,
			Reviews:  &reviews,
			Source:   SourceSynthetic,
		})
	}
	return candidates
}

func splitLocation(location string) (city, state string) {
	if info, ok := citiesByName[location]; ok {
		return location, info.State
	}
	return location, ""
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}
