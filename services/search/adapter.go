package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"snapfix/models"
	"snapfix/services/terms"

	"go.uber.org/zap"
)

// Criteria drives one external vendor search.
type Criteria struct {
	Location           models.Coordinate
	RadiusMiles        float64
	ProblemDescription string
	Category           models.ServiceCategory
}

// VendorSearchService finds unverified local vendors through the AI web
// search backend. A nil outcome means the search could not run; an outcome
// with zero vendors means it ran and found nothing.
type VendorSearchService interface {
	Search(ctx context.Context, criteria Criteria) (*models.SearchOutcome, error)
}

// DefaultVendorSearchService implements the extraction pipeline over an
// injected SearchClient.
type DefaultVendorSearchService struct {
	Client           SearchClient
	Terms            *terms.Service
	FallbackLocality string
	GeocodeTimeout   time.Duration
	SearchTimeout    time.Duration
	TermsTimeout     time.Duration
	MaxResults       int
	Logger           *zap.Logger
}

// Search resolves a locality, obtains search phrases, issues one
// directory-biased query and extracts business candidates from the results.
func (s *DefaultVendorSearchService) Search(ctx context.Context, criteria Criteria) (*models.SearchOutcome, error) {
	// Locality resolution and term generation are independent network
	// calls; run them concurrently.
	var (
		wg       sync.WaitGroup
		locality string
		phrases  terms.Terms
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		locality = s.resolveLocality(ctx, criteria.Location)
	}()
	go func() {
		defer wg.Done()
		// The term service cannot fail; it degrades to its static table.
		// The language-model path gets its own deadline so a hung backend
		// cannot stall the whole search.
		termsCtx, cancel := context.WithTimeout(ctx, s.TermsTimeout)
		defer cancel()
		phrases, _ = s.Terms.Generate(termsCtx, criteria.ProblemDescription, criteria.Category)
	}()
	wg.Wait()

	query := buildQuery(phrases.PrimaryTerm, locality, criteria.RadiusMiles)

	searchCtx, cancel := context.WithTimeout(ctx, s.SearchTimeout)
	defer cancel()
	docs, err := s.Client.Search(searchCtx, query, s.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("vendor search failed: %w", err)
	}
	if len(docs) == 0 {
		s.Logger.Info("Vendor search returned no documents", zap.String("query", query))
		return nil, nil
	}

	vendors := make([]models.UnverifiedVendor, 0, len(docs))
	rejected := 0
	for _, doc := range docs {
		if isNonBusinessContent(doc) {
			rejected++
			s.Logger.Debug("Rejected non-business result", zap.String("url", doc.URL))
			continue
		}
		c := extractCandidate(doc)
		if c == nil {
			rejected++
			continue
		}
		vendors = append(vendors, s.buildVendor(doc, c, criteria.Category))
	}

	outcome := &models.SearchOutcome{
		Vendors: vendors,
		Metadata: models.SearchMetadata{
			TotalVendorsFound: len(vendors),
			ResultsExamined:   len(docs),
			ResultsRejected:   rejected,
			SearchRadiusMiles: criteria.RadiusMiles,
			Locality:          locality,
			SearchedAt:        time.Now().UTC(),
			ExternalSearchRan: true,
			Recommendations:   recommendations(vendors),
		},
	}
	return outcome, nil
}

// resolveLocality turns coordinates into a human-readable place name via a
// reverse-geocoding-style query against the search backend. Best effort
// with its own short timeout; the configured fallback covers failures.
func (s *DefaultVendorSearchService) resolveLocality(ctx context.Context, coord models.Coordinate) string {
	geoCtx, cancel := context.WithTimeout(ctx, s.GeocodeTimeout)
	defer cancel()

	query := fmt.Sprintf("what city or town is at latitude %.4f, longitude %.4f", coord.Latitude, coord.Longitude)
	docs, err := s.Client.Search(geoCtx, query, 3)
	if err != nil || len(docs) == 0 {
		s.Logger.Debug("Locality resolution failed, using fallback",
			zap.String("fallback", s.FallbackLocality),
			zap.Error(err),
		)
		return s.FallbackLocality
	}
	for _, doc := range docs {
		if loc := extractLocality(doc.Title + " " + doc.Content); loc != "" {
			return loc
		}
	}
	return s.FallbackLocality
}

// localityRe matches "City, ST" / "City Name, Country" style fragments.
var localityRe = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+){0,2}, (?:[A-Z]{2}|[A-Z][a-z]+(?: [A-Z][a-z]+)?))\b`)

func extractLocality(text string) string {
	return localityRe.FindString(text)
}

// buildQuery biases the query toward business directories to reduce
// editorial-content pollution in results.
func buildQuery(primaryTerm, locality string, radiusMiles float64) string {
	return fmt.Sprintf(
		"%s near %s within %.0f miles, business directory listings with phone number, email and address",
		primaryTerm, locality, radiusMiles,
	)
}

func (s *DefaultVendorSearchService) buildVendor(doc Document, c *candidate, category models.ServiceCategory) models.UnverifiedVendor {
	v := models.UnverifiedVendor{
		CompanyName:       c.Name,
		ServiceCategories: []models.ServiceCategory{category},
		Website:           doc.URL,
		Description:       excerpt(doc.Content, 200),
		RelevanceScore:    RelevanceScore(len(c.BusinessEmails), len(c.Phones), len(c.Addresses)),
		Source:            models.VendorSourceSearch,
	}
	if len(c.Phones) > 0 {
		v.Phone = c.Phones[0]
	}
	if len(c.BusinessEmails) > 0 {
		v.Email = c.BusinessEmails[0]
	}
	if len(c.Addresses) > 0 {
		v.Address = c.Addresses[0]
	}

	content := strings.ToLower(doc.Content)
	v.EmergencyService = strings.Contains(content, "emergency") || strings.Contains(content, "24/7")
	v.SameDayService = strings.Contains(content, "same day") || strings.Contains(content, "same-day")
	if strings.Contains(content, "free estimate") || strings.Contains(content, "free quote") {
		yes := true
		v.FreeEstimates = &yes
	}
	return v
}

func excerpt(text string, max int) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= max {
		return trimmed
	}
	return strings.TrimSpace(trimmed[:max])
}

// recommendations synthesizes a short note on result quality for the
// orchestrator and UI.
func recommendations(vendors []models.UnverifiedVendor) string {
	if len(vendors) == 0 {
		return "No contactable local businesses were found; consider widening the search radius."
	}
	withEmail := 0
	for _, v := range vendors {
		if v.Email != "" {
			withEmail++
		}
	}
	if withEmail == 0 {
		return fmt.Sprintf("Found %d local businesses, none with a direct business email; phone outreach is the only channel available.", len(vendors))
	}
	return fmt.Sprintf("Found %d local businesses, %d with a direct business email; contact those first.", len(vendors), withEmail)
}
