package places

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSearch(t *testing.T) {
	var gotPath, gotKey, gotFieldMask string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Goog-Api-Key")
		gotFieldMask = r.Header.Get("X-Goog-FieldMask")

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		_, _ = w.Write([]byte(`{"places": [{"id": "p1", "displayName": {"text": "Daily Bread"}, "formattedAddress": "12 MG Road, Pune", "rating": 4.4, "userRatingCount": 213, "websiteUri": "https://dailybread.example", "nationalPhoneNumber": "020 1234 5678"}]}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	resp, err := client.TextSearch(context.Background(), "bakery in Pune", 5)

	require.NoError(t, err)
	assert.Equal(t, "/places:searchText", gotPath)
	assert.Equal(t, "test-api-key", gotKey)
	assert.Contains(t, gotFieldMask, "places.id")
	assert.Contains(t, gotFieldMask, "places.nationalPhoneNumber")
	assert.Equal(t, "bakery in Pune", gotBody["textQuery"])
	assert.Equal(t, float64(5), gotBody["maxResultCount"])

	require.Len(t, resp.Places, 1)
	place := resp.Places[0]
	assert.Equal(t, "p1", place.ID)
	assert.Equal(t, "Daily Bread", place.DisplayName.Text)
	assert.Equal(t, 4.4, place.Rating)
	assert.Equal(t, 213, place.UserRatingCount)
	assert.Equal(t, "020 1234 5678", place.NationalPhoneNumber)
}

func TestTextSearchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": {"message": "API key invalid"}}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	_, err := client.TextSearch(context.Background(), "bakery in Pune", 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "API key invalid")
}

func TestTextSearchEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	resp, err := client.TextSearch(context.Background(), "bakery in Atlantis", 5)

	require.NoError(t, err)
	assert.Empty(t, resp.Places)
}
