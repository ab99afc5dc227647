package models

import "math"

// Coordinate is a geographic point. Immutable value type.
type Coordinate struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Valid reports whether the coordinate is finite and within range.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// ServiceCategory is the closed set of problem categories a request can carry.
type ServiceCategory string

const (
	CategoryPlumbing        ServiceCategory = "plumbing"
	CategoryElectrical      ServiceCategory = "electrical"
	CategoryHVAC            ServiceCategory = "hvac"
	CategoryCarpentry       ServiceCategory = "carpentry"
	CategoryPainting        ServiceCategory = "painting"
	CategoryLandscaping     ServiceCategory = "landscaping"
	CategoryApplianceRepair ServiceCategory = "appliance_repair"
	CategoryGeneralHandyman ServiceCategory = "general_handyman"
	CategoryOther           ServiceCategory = "other"
)

// ServiceCategories lists every known category in declaration order.
var ServiceCategories = []ServiceCategory{
	CategoryPlumbing,
	CategoryElectrical,
	CategoryHVAC,
	CategoryCarpentry,
	CategoryPainting,
	CategoryLandscaping,
	CategoryApplianceRepair,
	CategoryGeneralHandyman,
	CategoryOther,
}

// Valid reports whether the category is a member of the closed set.
func (sc ServiceCategory) Valid() bool {
	for _, c := range ServiceCategories {
		if sc == c {
			return true
		}
	}
	return false
}
