package clustering

import (
	"math"
	"math/rand"
)

const (
	maxIterations        = 100
	convergenceThreshold = 0.01 // km of centroid movement
)

var clusterColors = []string{
	"#3b82f6", "#ef4444", "#10b981", "#f59e0b",
	"#8b5cf6", "#ec4899", "#06b6d4", "#84cc16",
}

// Cluster is one k-means cluster over the business registry.
type Cluster struct {
	ID       int
	Centroid Point
	Points   []Point
	Color    string
}

// KMeans partitions points into k clusters by haversine distance. Initial
// centroids are sampled with rng so callers control determinism in tests.
// Returns the clusters and the number of iterations run.
func KMeans(points []Point, k int, rng *rand.Rand) ([]Cluster, int) {
	if len(points) == 0 || k <= 0 {
		return nil, 0
	}
	if k > len(points) {
		k = len(points)
	}

	centroids := make([]Point, 0, k)
	for _, i := range rng.Perm(len(points))[:k] {
		centroids = append(centroids, Point{Latitude: points[i].Latitude, Longitude: points[i].Longitude, Index: -1})
	}

	var clusters []Cluster
	iterations := 0
	for iterations < maxIterations {
		iterations++

		clusters = assignToClusters(points, centroids)

		next := make([]Point, len(centroids))
		for i, c := range clusters {
			if centroid, ok := Centroid(c.Points); ok {
				next[i] = centroid
			} else {
				next[i] = centroids[i] // empty cluster keeps its centroid
			}
		}

		if converged(centroids, next) {
			centroids = next
			break
		}
		centroids = next
	}

	for i := range clusters {
		clusters[i].Centroid = centroids[i]
	}
	return clusters, iterations
}

func assignToClusters(points []Point, centroids []Point) []Cluster {
	clusters := make([]Cluster, len(centroids))
	for i, c := range centroids {
		clusters[i] = Cluster{ID: i, Centroid: c, Color: clusterColors[i%len(clusterColors)]}
	}

	for _, p := range points {
		closest := 0
		minDist := math.Inf(1)
		for i, c := range centroids {
			if d := Distance(p.Latitude, p.Longitude, c.Latitude, c.Longitude); d < minDist {
				minDist = d
				closest = i
			}
		}
		clusters[closest].Points = append(clusters[closest].Points, p)
	}
	return clusters
}

func converged(old, next []Point) bool {
	for i := range old {
		if Distance(old[i].Latitude, old[i].Longitude, next[i].Latitude, next[i].Longitude) >= convergenceThreshold {
			return false
		}
	}
	return true
}
