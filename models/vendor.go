package models

import "time"

// VendorSource tags where an unverified vendor record came from, so the
// merger can order and deduplicate by source priority.
type VendorSource string

const (
	// VendorSourceLocal marks vendors already known to the platform but not
	// yet verified. They win deduplication against search results.
	VendorSourceLocal VendorSource = "local"
	// VendorSourceSearch marks vendors discovered through external web search.
	VendorSourceSearch VendorSource = "search"
)

// UnverifiedVendor is a business discovered outside the verified provider
// pool. Records are built per search call and never persisted.
type UnverifiedVendor struct {
	CompanyName       string            `json:"companyName"`
	ServiceCategories []ServiceCategory `json:"serviceCategories,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	Email             string            `json:"email,omitempty"`
	Website           string            `json:"website,omitempty"`
	Address           string            `json:"address,omitempty"`
	Rating            *float64          `json:"rating,omitempty"`
	ReviewCount       *int              `json:"reviewCount,omitempty"`
	RatingSource      string            `json:"ratingSource,omitempty"`
	Description       string            `json:"description,omitempty"`
	EmergencyService  bool              `json:"emergencyService,omitempty"`
	SameDayService    bool              `json:"sameDayService,omitempty"`
	FreeEstimates     *bool             `json:"freeEstimates,omitempty"`
	YearsInBusiness   *int              `json:"yearsInBusiness,omitempty"`
	RelevanceScore    float64           `json:"relevanceScore"`
	Source            VendorSource      `json:"source"`
}

// HasContact reports whether at least one outreach channel was found.
func (v *UnverifiedVendor) HasContact() bool {
	return v.Phone != "" || v.Email != "" || v.Website != ""
}

// SearchMetadata is the diagnostic record attached to a matching result.
type SearchMetadata struct {
	TotalVendorsFound int       `json:"totalVendorsFound"`
	ResultsExamined   int       `json:"resultsExamined"`
	ResultsRejected   int       `json:"resultsRejected"`
	SearchRadiusMiles float64   `json:"searchRadiusMiles"`
	Locality          string    `json:"locality,omitempty"`
	SearchedAt        time.Time `json:"searchedAt"`
	ExternalSearchRan bool      `json:"externalSearchRan"`
	Recommendations   string    `json:"recommendations,omitempty"`
}

// SearchOutcome is what the vendor search adapter returns on success. A nil
// *SearchOutcome means the search could not run; an outcome with zero
// vendors means it ran and found nothing.
type SearchOutcome struct {
	Vendors  []UnverifiedVendor `json:"vendors"`
	Metadata SearchMetadata     `json:"metadata"`
}
