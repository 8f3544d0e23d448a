package location

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance in kilometers between two
// latitude/longitude pairs using the haversine formula. Pure function.
func DistanceKm(latA, lonA, latB, lonB float64) float64 {
	toRadians := func(degrees float64) float64 { return degrees * math.Pi / 180 }

	dLat := toRadians(latB - latA)
	dLon := toRadians(lonB - lonA)
	lat1 := toRadians(latA)
	lat2 := toRadians(latB)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Nearest returns the slug of the point closest to (lat, lon) by a linear
// scan, and false when points is empty.
//
// Exact distance ties are broken by input order: the first point encountered
// at the minimum distance wins. This tie-break is implementation-defined and
// depends on the order of the input slice.
func Nearest(lat, lon float64, points []Point) (string, bool) {
	if len(points) == 0 {
		return "", false
	}

	nearest := points[0]
	shortest := DistanceKm(lat, lon, nearest.Latitude, nearest.Longitude)

	for _, p := range points[1:] {
		d := DistanceKm(lat, lon, p.Latitude, p.Longitude)
		if d < shortest {
			shortest = d
			nearest = p
		}
	}

	return nearest.Slug, true
}
