package leadgen

import (
	"context"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwii/qwii-api/internal/infrastructure/places"
	"github.com/qwii/qwii-api/pkg/retry"
)

// fakePlacesClient serves canned responses keyed by query and counts calls.
type fakePlacesClient struct {
	responses map[string]*places.TextSearchResponse
	err       error
	calls     int
	queries   []string
}

func (f *fakePlacesClient) TextSearch(ctx context.Context, query string, maxResults int) (*places.TextSearchResponse, error) {
	f.calls++
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	if resp, ok := f.responses[query]; ok {
		return resp, nil
	}
	return &places.TextSearchResponse{}, nil
}

func place(id, name string) places.Place {
	return places.Place{
		ID:               id,
		DisplayName:      places.DisplayName{Text: name},
		FormattedAddress: name + " Street, Mumbai",
	}
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t, "restaurant in Mumbai", BuildQuery("restaurant", "Mumbai"))
}

func TestScrapeSyntheticDeterministic(t *testing.T) {
	scraper := NewScraper(nil, retry.Policy{MaxAttempts: 1})

	first, calls, err := scraper.Scrape(context.Background(), "restaurant", "Mumbai", nil, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, calls)
	require.Len(t, first, 5)

	second, _, err := scraper.Scrape(context.Background(), "restaurant", "Mumbai", nil, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, cand := range first {
		assert.Equal(t, SourceSynthetic, cand.Source)
		assert.True(t, strings.HasPrefix(cand.PlaceID, "syn-"))
		assert.Equal(t, "Mumbai", cand.City)
		assert.Equal(t, "Maharashtra", cand.State)
		require.NotNil(t, cand.Rating)
		assert.GreaterOrEqual(t, *cand.Rating, 3.0)
		assert.LessOrEqual(t, *cand.Rating, 5.0)
	}
}

func TestScrapeSyntheticUnknownLocation(t *testing.T) {
	scraper := NewScraper(nil, retry.Policy{MaxAttempts: 1})

	candidates, _, err := scraper.Scrape(context.Background(), "bakery", "Smallville", nil, 3)

	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, "Smallville", candidates[0].City)
	assert.Equal(t, "", candidates[0].State)
}

func TestScrapeLimitClamped(t *testing.T) {
	scraper := NewScraper(nil, retry.Policy{MaxAttempts: 1})

	candidates, _, err := scraper.Scrape(context.Background(), "retail", "Delhi", nil, 100)
	require.NoError(t, err)
	assert.Len(t, candidates, 20)

	candidates, _, err = scraper.Scrape(context.Background(), "retail", "Delhi", nil, 0)
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
}

func TestScrapeOneCallPerKeyword(t *testing.T) {
	client := &fakePlacesClient{
		responses: map[string]*places.TextSearchResponse{
			"bakery in Pune": {Places: []places.Place{place("p1", "Daily Bread")}},
			"cafe in Pune":   {Places: []places.Place{place("p2", "Cafe Aroma")}},
		},
	}
	scraper := NewScraper(client, retry.Policy{MaxAttempts: 1})

	candidates, calls, err := scraper.Scrape(context.Background(), "food", "Pune", []string{"bakery", "cafe"}, 10)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"bakery in Pune", "cafe in Pune"}, client.queries)
	require.Len(t, candidates, 2)
	assert.Equal(t, SourceGoogleMaps, candidates[0].Source)
	assert.Equal(t, "food", candidates[0].Industry)
	assert.Equal(t, "Pune", candidates[0].City)
	assert.Equal(t, "Maharashtra", candidates[0].State)
}

func TestScrapeDeduplicatesAcrossKeywords(t *testing.T) {
	shared := place("p1", "Daily Bread")
	client := &fakePlacesClient{
		responses: map[string]*places.TextSearchResponse{
			"bakery in Pune": {Places: []places.Place{shared, place("p2", "Cake Walk")}},
			"cafe in Pune":   {Places: []places.Place{shared, place("p3", "Cafe Aroma")}},
		},
	}
	scraper := NewScraper(client, retry.Policy{MaxAttempts: 1})

	candidates, _, err := scraper.Scrape(context.Background(), "food", "Pune", []string{"bakery", "cafe"}, 10)

	require.NoError(t, err)
	require.Len(t, candidates, 3)
	ids := []string{candidates[0].PlaceID, candidates[1].PlaceID, candidates[2].PlaceID}
	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, ids)
}

func TestScrapeStopsAtLimit(t *testing.T) {
	client := &fakePlacesClient{
		responses: map[string]*places.TextSearchResponse{
			"bakery in Pune": {Places: []places.Place{place("p1", "A"), place("p2", "B")}},
			"cafe in Pune":   {Places: []places.Place{place("p3", "C")}},
		},
	}
	scraper := NewScraper(client, retry.Policy{MaxAttempts: 1})

	candidates, calls, err := scraper.Scrape(context.Background(), "food", "Pune", []string{"bakery", "cafe"}, 2)

	require.NoError(t, err)
	assert.Len(t, candidates, 2)
	// The limit was reached on the first keyword, so the second was skipped.
	assert.Equal(t, 1, calls)
}

func TestScrapeMapsOptionalFields(t *testing.T) {
	full := places.Place{
		ID:                  "p1",
		DisplayName:         places.DisplayName{Text: "Daily Bread"},
		FormattedAddress:    "12 MG Road, Pune",
		Rating:              4.4,
		UserRatingCount:     213,
		WebsiteURI:          "https://dailybread.example",
		NationalPhoneNumber: "020 1234 5678",
	}
	client := &fakePlacesClient{
		responses: map[string]*places.TextSearchResponse{
			"bakery in Pune": {Places: []places.Place{full, place("p2", "Bare Bones")}},
		},
	}
	scraper := NewScraper(client, retry.Policy{MaxAttempts: 1})

	candidates, _, err := scraper.Scrape(context.Background(), "bakery", "Pune", nil, 10)

	require.NoError(t, err)
	require.Len(t, candidates, 2)

	require.NotNil(t, candidates[0].Rating)
	assert.Equal(t, 4.4, *candidates[0].Rating)
	require.NotNil(t, candidates[0].Reviews)
	assert.Equal(t, 213, *candidates[0].Reviews)
	require.NotNil(t, candidates[0].Website)
	require.NotNil(t, candidates[0].Phone)

	assert.Nil(t, candidates[1].Rating)
	assert.Nil(t, candidates[1].Reviews)
	assert.Nil(t, candidates[1].Website)
	assert.Nil(t, candidates[1].Phone)
}

func TestScrapePropagatesSearchError(t *testing.T) {
	client := &fakePlacesClient{err: eris.New("permission denied")}
	scraper := NewScraper(client, retry.Policy{MaxAttempts: 1})

	candidates, calls, err := scraper.Scrape(context.Background(), "retail", "Delhi", nil, 5)

	assert.Error(t, err)
	assert.Nil(t, candidates)
	assert.Equal(t, 1, calls)
}
