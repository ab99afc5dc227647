package models

import "fmt"

// DefaultSearchRadiusMiles applies when a match request does not set one.
const DefaultSearchRadiusMiles = 25

// MatchRequest drives one provider-matching call. Input value object, never
// mutated by the engine.
type MatchRequest struct {
	Location    Coordinate      `json:"location"`
	Category    ServiceCategory `json:"category"`
	RadiusMiles float64         `json:"radiusMiles,omitempty"`
	Query       string          `json:"query,omitempty"`
	Description string          `json:"description,omitempty"`
}

// Radius returns the effective search radius.
func (r MatchRequest) Radius() float64 {
	if r.RadiusMiles > 0 {
		return r.RadiusMiles
	}
	return DefaultSearchRadiusMiles
}

// Validate rejects malformed requests before any store or network access.
func (r MatchRequest) Validate() error {
	if !r.Location.Valid() {
		return fmt.Errorf("location must be finite coordinates within range")
	}
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	if !r.Category.Valid() {
		return fmt.Errorf("unknown service category %q", r.Category)
	}
	return nil
}

// RankedMatch is a scored, distance-annotated verified provider result.
type RankedMatch struct {
	Provider      Provider `json:"provider"`
	DistanceMiles float64  `json:"distanceMiles"`
	MatchScore    float64  `json:"matchScore"`
}

// MatchingResult is the envelope returned to the UI layer. All three fields
// are always present; callers never branch on absence.
type MatchingResult struct {
	VerifiedBusinesses []RankedMatch      `json:"verifiedBusinesses"`
	UnverifiedVendors  []UnverifiedVendor `json:"unverifiedVendors"`
	SearchMetadata     *SearchMetadata    `json:"searchMetadata"`
}

// Summary builds the human-readable message shown alongside results.
func (m *MatchingResult) Summary() string {
	switch {
	case len(m.VerifiedBusinesses) > 0:
		plural := ""
		if len(m.VerifiedBusinesses) > 1 {
			plural = "s"
		}
		return fmt.Sprintf("We found %d verified service provider%s in your area.", len(m.VerifiedBusinesses), plural)
	case len(m.UnverifiedVendors) > 0:
		plural := ""
		if len(m.UnverifiedVendors) > 1 {
			plural = "s"
		}
		return fmt.Sprintf("We couldn't find verified providers on our platform, but we found %d local service provider%s that may be able to help.", len(m.UnverifiedVendors), plural)
	default:
		return "Unfortunately, we couldn't find any service providers in your area. Please try expanding your search radius."
	}
}
