package matching

import (
	"strings"

	"snapfix/models"
	"snapfix/services/search"
)

// normalizeCompanyName lowercases and collapses whitespace so the same
// business spelled differently across sources deduplicates to one entry.
func normalizeCompanyName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// providerToVendor normalizes a locally known, not-yet-verified provider
// into the unified vendor shape used by the merged result.
func providerToVendor(p models.Provider) models.UnverifiedVendor {
	emails, phones, addresses := 0, 0, 0
	if p.Email != "" && !search.IsFreeMailAddress(p.Email) {
		emails = 1
	}
	if p.Phone != "" {
		phones = 1
	}
	v := models.UnverifiedVendor{
		CompanyName:       p.Name,
		ServiceCategories: p.Categories,
		Phone:             p.Phone,
		Email:             p.Email,
		Website:           p.Website,
		Description:       p.Description,
		YearsInBusiness:   p.YearsInBusiness,
		RelevanceScore:    search.RelevanceScore(emails, phones, addresses),
		Source:            models.VendorSourceLocal,
	}
	return v
}

// mergeVendors concatenates vendor lists in source-priority order and drops
// later duplicates by normalized company name. Locally known vendors come
// first, so they win against search-derived duplicates.
func mergeVendors(lists ...[]models.UnverifiedVendor) []models.UnverifiedVendor {
	merged := make([]models.UnverifiedVendor, 0)
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, v := range list {
			key := normalizeCompanyName(v.CompanyName)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, v)
		}
	}
	return merged
}
