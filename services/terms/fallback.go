package terms

import (
	"context"

	"snapfix/models"
)

// staticTerms maps every category to pre-defined professional search
// phrases. Lookup is deterministic: the same category always yields the
// same terms.
var staticTerms = map[models.ServiceCategory]Terms{
	models.CategoryPlumbing: {
		PrimaryTerm:      "plumbing contractor",
		AlternativeTerms: []string{"plumber", "leak repair service"},
	},
	models.CategoryElectrical: {
		PrimaryTerm:      "electrical contractor",
		AlternativeTerms: []string{"electrician", "electrical repair service"},
	},
	models.CategoryHVAC: {
		PrimaryTerm:      "hvac contractor",
		AlternativeTerms: []string{"heating and cooling service", "air conditioning repair"},
	},
	models.CategoryCarpentry: {
		PrimaryTerm:      "carpentry contractor",
		AlternativeTerms: []string{"carpenter", "woodworking service"},
	},
	models.CategoryPainting: {
		PrimaryTerm:      "painting contractor",
		AlternativeTerms: []string{"painter and decorator", "house painting service"},
	},
	models.CategoryLandscaping: {
		PrimaryTerm:      "landscaping contractor",
		AlternativeTerms: []string{"landscaper", "lawn care service"},
	},
	models.CategoryApplianceRepair: {
		PrimaryTerm:      "appliance repair company",
		AlternativeTerms: []string{"appliance technician", "appliance service"},
	},
	models.CategoryGeneralHandyman: {
		PrimaryTerm:      "handyman service",
		AlternativeTerms: []string{"home repair contractor", "property maintenance service"},
	},
	models.CategoryOther: {
		PrimaryTerm:      "home maintenance contractor",
		AlternativeTerms: []string{"home repair service", "general contractor"},
	},
}

// StaticGenerator is the deterministic category table fallback.
type StaticGenerator struct{}

func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

// Generate looks up the category table. Unknown categories get the "other"
// entry, so this path never fails.
func (g *StaticGenerator) Generate(_ context.Context, _ string, category models.ServiceCategory) (Terms, error) {
	if t, ok := staticTerms[category]; ok {
		return t, nil
	}
	return staticTerms[models.CategoryOther], nil
}
