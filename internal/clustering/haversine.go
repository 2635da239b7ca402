// Package clustering implements the geospatial analysis behind the
// store-placement endpoints: haversine geometry, k-means over the business
// registry, and competitor analysis around a candidate location.
package clustering

import (
	"math"
	"sort"
)

const earthRadiusKm = 6371

// Point is a geographic coordinate, optionally tagged with the business it
// belongs to.
type Point struct {
	Latitude  float64
	Longitude float64
	Index     int // index into the source business slice, -1 for synthetic points
}

// Distance returns the haversine distance between two coordinates in
// kilometers.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Centroid returns the geographic centroid of the points, computed through
// Cartesian space so it stays correct across the antimeridian.
func Centroid(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	if len(points) == 1 {
		return points[0], true
	}

	var x, y, z float64
	for _, p := range points {
		latRad := p.Latitude * math.Pi / 180
		lonRad := p.Longitude * math.Pi / 180
		x += math.Cos(latRad) * math.Cos(lonRad)
		y += math.Cos(latRad) * math.Sin(lonRad)
		z += math.Sin(latRad)
	}

	n := float64(len(points))
	x /= n
	y /= n
	z /= n

	lon := math.Atan2(y, x)
	hyp := math.Sqrt(x*x + y*y)
	lat := math.Atan2(z, hyp)

	return Point{
		Latitude:  lat * 180 / math.Pi,
		Longitude: lon * 180 / math.Pi,
		Index:     -1,
	}, true
}

// CountWithinRadius returns how many points fall within radiusKm of center.
func CountWithinRadius(center Point, points []Point, radiusKm float64) int {
	count := 0
	for _, p := range points {
		if Distance(center.Latitude, center.Longitude, p.Latitude, p.Longitude) <= radiusKm {
			count++
		}
	}
	return count
}

// Nearest returns the closest point to location and its distance. ok is
// false when points is empty.
func Nearest(location Point, points []Point) (nearest Point, distanceKm float64, ok bool) {
	if len(points) == 0 {
		return Point{}, math.Inf(1), false
	}

	nearest = points[0]
	distanceKm = Distance(location.Latitude, location.Longitude, points[0].Latitude, points[0].Longitude)
	for _, p := range points[1:] {
		if d := Distance(location.Latitude, location.Longitude, p.Latitude, p.Longitude); d < distanceKm {
			distanceKm = d
			nearest = p
		}
	}
	return nearest, distanceKm, true
}

// RankedPoint is a point paired with its distance from a query center.
type RankedPoint struct {
	Point      Point
	DistanceKm float64
}

// WithinRadius returns all points within radiusKm of center, sorted nearest
// first.
func WithinRadius(center Point, points []Point, radiusKm float64) []RankedPoint {
	var result []RankedPoint
	for _, p := range points {
		d := Distance(center.Latitude, center.Longitude, p.Latitude, p.Longitude)
		if d <= radiusKm {
			result = append(result, RankedPoint{Point: p, DistanceKm: d})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DistanceKm < result[j].DistanceKm })
	return result
}
