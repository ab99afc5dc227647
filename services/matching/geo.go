package matching

import (
	"math"

	"snapfix/models"
)

// Distance calculates the great-circle distance (in miles) between two
// coordinates using the Haversine formula. Callers are responsible for
// passing valid coordinates; no validation happens here.
func Distance(a, b models.Coordinate) float64 {
	const R = 3959 // Earth radius in miles
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180)
	lat1Rad := a.Latitude * (math.Pi / 180)
	lat2Rad := b.Latitude * (math.Pi / 180)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return R * c
}
