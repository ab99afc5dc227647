package search

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"snapfix/models"
	"snapfix/services/terms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSearchClient answers the reverse-geocode probe and the main search
// separately, keyed on the query shape.
type stubSearchClient struct {
	geoDocs    []Document
	geoErr     error
	searchDocs []Document
	searchErr  error
	lastQuery  string
}

func (s *stubSearchClient) Search(_ context.Context, query string, _ int) ([]Document, error) {
	if strings.HasPrefix(query, "what city or town") {
		return s.geoDocs, s.geoErr
	}
	s.lastQuery = query
	return s.searchDocs, s.searchErr
}

func newTestSearchService(client SearchClient) *DefaultVendorSearchService {
	return &DefaultVendorSearchService{
		Client:           client,
		Terms:            terms.NewService(nil, zap.NewNop()),
		FallbackLocality: "your area",
		GeocodeTimeout:   time.Second,
		SearchTimeout:    time.Second,
		TermsTimeout:     time.Second,
		MaxResults:       20,
		Logger:           zap.NewNop(),
	}
}

// hangingGenerator blocks until its context expires, like a stalled
// language-model backend.
type hangingGenerator struct{}

func (hangingGenerator) Generate(ctx context.Context, _ string, _ models.ServiceCategory) (terms.Terms, error) {
	<-ctx.Done()
	return terms.Terms{}, ctx.Err()
}

var testCriteria = Criteria{
	Location:           models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
	RadiusMiles:        25,
	ProblemDescription: "leaking pipe under the kitchen sink",
	Category:           models.CategoryPlumbing,
}

func TestSearch_ExtractsVendorsAndCountsRejections(t *testing.T) {
	client := &stubSearchClient{
		geoErr: errors.New("geocode unavailable"),
		searchDocs: []Document{
			{
				URL:     "https://www.yelp.com/biz/acme-plumbing-london",
				Title:   "Acme Plumbing Ltd - Yelp",
				Content: "Emergency plumbing, 24/7. Call (020) 7946-0123 or email office@acmeplumbing.com. Free estimates.",
			},
			{
				URL:   "https://example.com/blog/fix-your-sink",
				Title: "How to fix your sink",
			},
			{
				URL:     "https://www.yellowpages.com/borough-drains",
				Title:   "Borough Drains - Yellow Pages",
				Content: "Same day service. No contact details published.",
			},
		},
	}
	svc := newTestSearchService(client)

	outcome, err := svc.Search(context.Background(), testCriteria)
	require.NoError(t, err)
	require.NotNil(t, outcome)

	require.Len(t, outcome.Vendors, 1, "blog rejected, contactless listing rejected")
	v := outcome.Vendors[0]
	assert.Equal(t, "Acme Plumbing Ltd", v.CompanyName)
	assert.Equal(t, "office@acmeplumbing.com", v.Email)
	assert.NotEmpty(t, v.Phone)
	assert.True(t, v.EmergencyService)
	require.NotNil(t, v.FreeEstimates)
	assert.True(t, *v.FreeEstimates)
	assert.Equal(t, models.VendorSourceSearch, v.Source)
	assert.InDelta(t, 10, v.RelevanceScore, 0.01)

	md := outcome.Metadata
	assert.Equal(t, 1, md.TotalVendorsFound)
	assert.Equal(t, 3, md.ResultsExamined)
	assert.Equal(t, 2, md.ResultsRejected)
	assert.True(t, md.ExternalSearchRan)
	assert.Equal(t, "your area", md.Locality, "geocode failure falls back")
	assert.NotEmpty(t, md.Recommendations)
}

func TestSearch_QueryIsDirectoryBiased(t *testing.T) {
	client := &stubSearchClient{
		geoDocs: []Document{
			{Title: "Coordinates 40.71, -74.00", Content: "This point is in New York, NY, United States."},
		},
		searchDocs: []Document{{URL: "https://example.com", Title: "x"}},
	}
	svc := newTestSearchService(client)

	_, err := svc.Search(context.Background(), testCriteria)
	require.NoError(t, err)

	assert.Contains(t, client.lastQuery, "near New York, NY")
	assert.Contains(t, client.lastQuery, "within 25 miles")
	assert.Contains(t, client.lastQuery, "business directory listings")
}

func TestSearch_StalledTermBackendFallsBackWithinBound(t *testing.T) {
	client := &stubSearchClient{
		geoErr:     errors.New("geocode unavailable"),
		searchDocs: []Document{{URL: "https://example.com", Title: "x"}},
	}
	svc := newTestSearchService(client)
	svc.Terms = terms.NewService(hangingGenerator{}, zap.NewNop())
	svc.TermsTimeout = 50 * time.Millisecond

	start := time.Now()
	_, err := svc.Search(context.Background(), testCriteria)
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 2*time.Second, "a hung model must not stall the search")
	assert.Contains(t, client.lastQuery, "plumbing contractor", "query uses the static fallback term")
}

func TestSearch_BackendErrorPropagates(t *testing.T) {
	client := &stubSearchClient{searchErr: errors.New("upstream 503")}
	svc := newTestSearchService(client)

	outcome, err := svc.Search(context.Background(), testCriteria)
	assert.Error(t, err)
	assert.Nil(t, outcome, "nil outcome signals the search could not run")
}

func TestSearch_NoDocumentsMeansNoOutcome(t *testing.T) {
	client := &stubSearchClient{}
	svc := newTestSearchService(client)

	outcome, err := svc.Search(context.Background(), testCriteria)
	assert.NoError(t, err)
	assert.Nil(t, outcome)
}

func TestExtractLocality(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"The point lies in Austin, TX near the river.", "Austin, TX"},
		{"This is San Luis Obispo, California according to the map.", "San Luis Obispo, California"},
		{"no locality here", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, extractLocality(tc.text), tc.text)
	}
}
