package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	providerRepo "snapfix/database/repository/provider"
	"snapfix/models"
)

// Scoring constants. Proximity is banded rather than linear so that truly
// local providers beat marginal differences between distant ones.
const (
	MaxProximityPoints = 50.0
	MaxTextPoints      = 30.0
	MaxCategoryPoints  = 20.0
	TokenOverlapPoints = 5.0

	// RelevanceFloor is the minimum match score kept when a free-text query
	// constrains the search. Pure location/category browsing has no floor.
	RelevanceFloor = 10.0
)

// RankingEngine scores and orders verified providers from the store against
// a match request.
type RankingEngine struct {
	ProviderRepo providerRepo.ProviderRepository
}

// Rank fetches candidate providers and returns them scored and ordered:
// match score descending, ties broken by ascending distance, store order as
// the final tiebreak. An empty result is a valid, non-exceptional outcome.
func (e *RankingEngine) Rank(req models.MatchRequest) ([]models.RankedMatch, error) {
	filter := providerRepo.ProviderFilter{}
	if req.Category != "" {
		filter.Categories = []models.ServiceCategory{req.Category}
	}
	providers, err := e.ProviderRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	radius := req.Radius()
	matches := make([]models.RankedMatch, 0, len(providers))
	for _, p := range providers {
		distance := roundTenth(Distance(req.Location, p.Location))
		if distance > radius {
			continue
		}
		score := matchScore(&p, req.Query, distance, req.Category)
		if req.Query != "" && score < RelevanceFloor {
			continue
		}
		matches = append(matches, models.RankedMatch{
			Provider:      p,
			DistanceMiles: distance,
			MatchScore:    score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		return matches[i].DistanceMiles < matches[j].DistanceMiles
	})

	return matches, nil
}

// matchScore combines the three capped sub-scores, clamped to [0, 100].
func matchScore(p *models.Provider, query string, distance float64, category models.ServiceCategory) float64 {
	score := proximityScore(distance) + textScore(p, query) + categoryScore(p, category)
	return math.Min(score, 100)
}

// proximityScore rewards nearness in bands of up to MaxProximityPoints.
func proximityScore(distance float64) float64 {
	switch {
	case distance <= 1:
		return 50
	case distance <= 5:
		return 40
	case distance <= 10:
		return 30
	case distance <= 15:
		return 20
	case distance <= 25:
		return 10
	default:
		return 0
	}
}

// textScore measures how well a free-text query matches the provider's name
// or city. Without a query every provider gets a flat 15.
func textScore(p *models.Provider, query string) float64 {
	if query == "" {
		return 15
	}

	q := strings.ToLower(strings.TrimSpace(query))
	name := strings.ToLower(p.Name)
	city := strings.ToLower(p.City)

	switch {
	case name == q:
		return MaxTextPoints
	case strings.Contains(name, q):
		return 20
	case city != "" && (strings.Contains(city, q) || strings.Contains(q, city)):
		return 15
	}

	// Partial word overlap between query and name tokens.
	var overlap float64
	nameWords := strings.Fields(name)
	for _, qw := range strings.Fields(q) {
		for _, nw := range nameWords {
			if strings.Contains(nw, qw) || strings.Contains(qw, nw) {
				overlap++
				break
			}
		}
	}
	return math.Min(overlap*TokenOverlapPoints, MaxTextPoints)
}

func categoryScore(p *models.Provider, category models.ServiceCategory) float64 {
	if category != "" && p.ServesCategory(category) {
		return MaxCategoryPoints
	}
	return 0
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
