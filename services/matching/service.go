package matching

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	providerRepo "snapfix/database/repository/provider"
	"snapfix/models"
	"snapfix/services/search"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const matchCacheTTL = 5 * time.Minute

// MatchingService is the single entry point the presentation layer calls.
type MatchingService interface {
	FindProviders(ctx context.Context, req models.MatchRequest) (*models.MatchingResult, error)
}

// DefaultMatchingService runs local ranking first, decides whether the
// external vendor search is needed, and merges both paths into one
// envelope. Aside from malformed input, it never fails: any downstream
// failure degrades into a usable (possibly empty) result.
type DefaultMatchingService struct {
	ProviderRepo providerRepo.ProviderRepository
	Ranker       *RankingEngine
	VendorSearch search.VendorSearchService
	CacheClient  *redis.Client

	// AlwaysSupplement switches the coverage-gap policy: false means the
	// external search runs only when no verified provider is found, true
	// means it always runs to enrich results.
	AlwaysSupplement bool

	// DefaultRadiusMiles applies when the request does not set a radius.
	// Zero falls back to the model-level default.
	DefaultRadiusMiles float64
	Logger             *zap.Logger
}

// FindProviders returns the unified matching envelope. The only error it
// returns is a malformed request, rejected before any store or network
// access; every other failure is absorbed into a degraded result.
func (s *DefaultMatchingService) FindProviders(ctx context.Context, req models.MatchRequest) (*models.MatchingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match request: %w", err)
	}
	if req.RadiusMiles <= 0 && s.DefaultRadiusMiles > 0 {
		req.RadiusMiles = s.DefaultRadiusMiles
	}

	result := &models.MatchingResult{
		VerifiedBusinesses: []models.RankedMatch{},
		UnverifiedVendors:  []models.UnverifiedVendor{},
	}

	// Under always-supplement the external search has no dependency on the
	// local outcome, so start it speculatively.
	var searchCh chan *models.SearchOutcome
	if s.AlwaysSupplement && s.VendorSearch != nil {
		searchCh = make(chan *models.SearchOutcome, 1)
		go func() {
			searchCh <- s.runVendorSearch(ctx, req)
		}()
	}

	verified, err := s.rankWithCache(ctx, req)
	if err != nil {
		// Store failure: log and continue. External search can still
		// produce a usable verified-empty result.
		s.Logger.Error("Local ranking failed, continuing degraded", zap.Error(err))
		verified = nil
	}
	if verified != nil {
		result.VerifiedBusinesses = verified
	}

	var outcome *models.SearchOutcome
	if searchCh != nil {
		outcome = <-searchCh
	} else if len(result.VerifiedBusinesses) == 0 && s.VendorSearch != nil {
		outcome = s.runVendorSearch(ctx, req)
	}

	var searchVendors []models.UnverifiedVendor
	if outcome != nil {
		searchVendors = outcome.Vendors
	}
	// Locally known but unverified providers rank ahead of search-derived
	// vendors: the platform already has some relationship with them.
	result.UnverifiedVendors = mergeVendors(s.localUnverifiedVendors(req), searchVendors)

	result.SearchMetadata = s.buildMetadata(req, result, outcome)
	return result, nil
}

// rankWithCache returns the ranked local matches, consulting the cache
// first. Cache failures are soft; only a store failure propagates.
func (s *DefaultMatchingService) rankWithCache(ctx context.Context, req models.MatchRequest) ([]models.RankedMatch, error) {
	key := matchCacheKey(req)
	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, key).Result(); err == nil && cached != "" {
			var matches []models.RankedMatch
			if err := json.Unmarshal([]byte(cached), &matches); err == nil {
				return matches, nil
			}
			// Unmarshal failure falls through to recomputation.
		}
	}

	matches, err := s.Ranker.Rank(req)
	if err != nil {
		return nil, err
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(matches); err == nil {
			if err := s.CacheClient.Set(ctx, key, data, matchCacheTTL).Err(); err != nil {
				s.Logger.Debug("Failed to cache match result", zap.Error(err))
			}
		}
	}
	return matches, nil
}

func matchCacheKey(req models.MatchRequest) string {
	reqBytes, _ := json.Marshal(req)
	return fmt.Sprintf("match:%x", sha256.Sum256(reqBytes))
}

// runVendorSearch invokes the external search adapter and absorbs every
// failure. A nil return means "could not search", distinct from an outcome
// with zero vendors ("searched, found nothing").
func (s *DefaultMatchingService) runVendorSearch(ctx context.Context, req models.MatchRequest) *models.SearchOutcome {
	criteria := search.Criteria{
		Location:           req.Location,
		RadiusMiles:        req.Radius(),
		ProblemDescription: problemDescription(req),
		Category:           req.Category,
	}
	outcome, err := s.VendorSearch.Search(ctx, criteria)
	if err != nil {
		s.Logger.Warn("External vendor search failed, continuing with local results", zap.Error(err))
		return nil
	}
	return outcome
}

// localUnverifiedVendors lists not-yet-verified providers the store already
// knows within the request radius, normalized into the vendor shape. Best
// effort: a store failure yields an empty list.
func (s *DefaultMatchingService) localUnverifiedVendors(req models.MatchRequest) []models.UnverifiedVendor {
	providers, err := s.ProviderRepo.List(providerRepo.ProviderFilter{
		Categories:        []models.ServiceCategory{req.Category},
		IncludeUnverified: true,
	})
	if err != nil {
		s.Logger.Warn("Failed to list local unverified providers", zap.Error(err))
		return nil
	}

	radius := req.Radius()
	var vendors []models.UnverifiedVendor
	for _, p := range providers {
		if p.IsVerified {
			continue
		}
		if Distance(req.Location, p.Location) > radius {
			continue
		}
		v := providerToVendor(p)
		// A vendor entry the customer cannot reach is useless; the same
		// contact rule the external pipeline enforces applies here.
		if !v.HasContact() {
			continue
		}
		vendors = append(vendors, v)
	}
	return vendors
}

// buildMetadata guarantees the diagnostic record is always present, whether
// or not the external search ran.
func (s *DefaultMatchingService) buildMetadata(req models.MatchRequest, result *models.MatchingResult, outcome *models.SearchOutcome) *models.SearchMetadata {
	if outcome != nil {
		md := outcome.Metadata
		md.TotalVendorsFound = len(result.UnverifiedVendors)
		if md.Recommendations == "" {
			md.Recommendations = result.Summary()
		}
		return &md
	}
	return &models.SearchMetadata{
		TotalVendorsFound: len(result.UnverifiedVendors),
		SearchRadiusMiles: req.Radius(),
		SearchedAt:        time.Now().UTC(),
		ExternalSearchRan: false,
		Recommendations:   result.Summary(),
	}
}

// problemDescription prefers the caller's free-text description and falls
// back to a service phrase for the category.
func problemDescription(req models.MatchRequest) string {
	if req.Description != "" {
		return req.Description
	}
	if phrase, ok := categoryDescriptions[req.Category]; ok {
		return phrase
	}
	return categoryDescriptions[models.CategoryOther]
}

var categoryDescriptions = map[models.ServiceCategory]string{
	models.CategoryPlumbing:        "plumbing repair and maintenance services",
	models.CategoryElectrical:      "electrical repair and installation services",
	models.CategoryHVAC:            "heating, ventilation, and air conditioning services",
	models.CategoryCarpentry:       "carpentry and woodworking services",
	models.CategoryPainting:        "painting and decorating services",
	models.CategoryLandscaping:     "landscaping and lawn care services",
	models.CategoryApplianceRepair: "appliance repair services",
	models.CategoryGeneralHandyman: "general handyman and home repair services",
	models.CategoryOther:           "general home maintenance and repair services",
}
