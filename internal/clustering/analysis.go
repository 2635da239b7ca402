package clustering

import (
	"errors"
	"math"
	"math/rand"
	"strings"

	"placewise/internal/models"
)

// Coordinates is a plain latitude/longitude pair for JSON output.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ClusterPoint is one business inside a rendered cluster.
type ClusterPoint struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	BusinessID   int     `json:"business_id"`
	BusinessName string  `json:"business_name"`
	Category     string  `json:"category"`
}

// ClusterInfo is a cluster formatted for API responses.
type ClusterInfo struct {
	ID            int            `json:"id"`
	Centroid      Coordinates    `json:"centroid"`
	Points        []ClusterPoint `json:"points"`
	Color         string         `json:"color"`
	BusinessCount int            `json:"business_count"`
}

// NearbyBusiness is one establishment near the recommended location.
type NearbyBusiness struct {
	BusinessID   int     `json:"business_id"`
	BusinessName string  `json:"business_name"`
	Category     string  `json:"category"`
	Street       string  `json:"street"`
	ZoneType     string  `json:"zone_type"`
	Distance     float64 `json:"distance"`
}

// CompetitorAnalysis summarizes same-category competition around the
// recommended location.
type CompetitorAnalysis struct {
	NearestCompetitor   *models.Business `json:"nearest_competitor"`
	DistanceToNearest   *float64         `json:"distance_to_nearest"`
	Competitors500m     int              `json:"competitors_within_500m"`
	Competitors1km      int              `json:"competitors_within_1km"`
	Competitors2km      int              `json:"competitors_within_2km"`
	MarketSaturation    float64          `json:"market_saturation"`
	RecommendedStrategy string           `json:"recommended_strategy"`
}

// OpportunityAnalysis is the headline verdict for the run.
type OpportunityAnalysis struct {
	TotalBusinesses int     `json:"totalBusinesses"`
	CompetitorCount int     `json:"competitorCount"`
	Opportunity     string  `json:"opportunity"`
	Confidence      float64 `json:"confidence"`
}

// Result is the full clustering response.
type Result struct {
	Clusters            []ClusterInfo       `json:"clusters"`
	Iterations          int                 `json:"iterations"`
	RecommendedLocation Coordinates         `json:"recommended_location"`
	ZoneType            string              `json:"zone_type"`
	Analysis            OpportunityAnalysis `json:"analysis"`
	CompetitorAnalysis  CompetitorAnalysis  `json:"competitor_analysis"`
	NearbyBusinesses    []NearbyBusiness    `json:"nearby_businesses"`
}

// ErrNoBusinesses is returned when the registry is empty.
var ErrNoBusinesses = errors.New("no businesses to cluster")

// maxExpectedCompetitors is the 1km competitor count treated as full market
// saturation.
const maxExpectedCompetitors = 10

// Analyze clusters the business registry and recommends a location for a new
// business of the given category. rng controls centroid initialization.
func Analyze(businesses []models.Business, category string, numClusters int, rng *rand.Rand) (*Result, error) {
	if len(businesses) == 0 {
		return nil, ErrNoBusinesses
	}
	if numClusters <= 0 {
		numClusters = 5
	}

	points := make([]Point, len(businesses))
	for i, b := range businesses {
		points[i] = Point{Latitude: b.Latitude, Longitude: b.Longitude, Index: i}
	}

	clusters, iterations := KMeans(points, numClusters, rng)

	recommended := pickBestCentroid(businesses, category, clusters, points)

	competitors := competitorPoints(businesses, category)
	compAnalysis := analyzeCompetitors(recommended, businesses, competitors)

	nearby := nearbyBusinesses(recommended, businesses, points)
	zoneType := dominantZone(nearby)

	opportunity, confidence := opportunityVerdict(compAnalysis)

	return &Result{
		Clusters:            formatClusters(businesses, clusters),
		Iterations:          iterations,
		RecommendedLocation: Coordinates{Latitude: recommended.Latitude, Longitude: recommended.Longitude},
		ZoneType:            zoneType,
		Analysis: OpportunityAnalysis{
			TotalBusinesses: len(businesses),
			CompetitorCount: len(competitors),
			Opportunity:     opportunity,
			Confidence:      confidence,
		},
		CompetitorAnalysis: compAnalysis,
		NearbyBusinesses:   nearby,
	}, nil
}

// pickBestCentroid scores each non-empty cluster on competitor density,
// overall density and commercial-zone share, and returns the winning
// centroid. Falls back to the centroid of everything when no cluster scored.
func pickBestCentroid(businesses []models.Business, category string, clusters []Cluster, all []Point) Point {
	bestScore := math.Inf(-1)
	var best *Cluster

	for i := range clusters {
		c := &clusters[i]
		if len(c.Points) == 0 {
			continue
		}

		var competitorCount, commercialCount int
		var totalDist float64
		for _, p := range c.Points {
			b := businesses[p.Index]
			if strings.EqualFold(b.Category, category) {
				competitorCount++
			}
			if b.ZoneType == "Commercial" {
				commercialCount++
			}
			totalDist += Distance(c.Centroid.Latitude, c.Centroid.Longitude, p.Latitude, p.Longitude)
		}

		avgDist := math.Max(totalDist/float64(len(c.Points)), 0.1)
		density := float64(len(c.Points)) / (math.Pi * avgDist * avgDist)
		competitorDensity := float64(competitorCount) / float64(len(c.Points))
		commercialBonus := float64(commercialCount) / float64(len(c.Points))

		score := (1-competitorDensity)*0.5 + density*0.3 + commercialBonus*0.2
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	if best == nil {
		centroid, _ := Centroid(all)
		return centroid
	}
	return best.Centroid
}

func competitorPoints(businesses []models.Business, category string) []Point {
	var pts []Point
	for i, b := range businesses {
		if strings.EqualFold(b.Category, category) {
			pts = append(pts, Point{Latitude: b.Latitude, Longitude: b.Longitude, Index: i})
		}
	}
	return pts
}

func analyzeCompetitors(location Point, businesses []models.Business, competitors []Point) CompetitorAnalysis {
	if len(competitors) == 0 {
		return CompetitorAnalysis{
			RecommendedStrategy: "FIRST MOVER: No competitors detected. Excellent opportunity to establish market presence and brand recognition.",
		}
	}

	nearest, dist, _ := Nearest(location, competitors)
	nearestBusiness := businesses[nearest.Index]

	c500m := CountWithinRadius(location, competitors, 0.5)
	c1km := CountWithinRadius(location, competitors, 1.0)
	c2km := CountWithinRadius(location, competitors, 2.0)

	var strategy string
	switch {
	case c500m == 0:
		strategy = "LOW COMPETITION: No immediate competitors. Focus on quality service and building customer loyalty."
	case c500m <= 2:
		strategy = "MODERATE COMPETITION: Differentiate through unique value proposition, better pricing, or superior service."
	case c500m <= 5:
		strategy = "HIGH COMPETITION: Require strong differentiation strategy. Consider niche specialization or unique selling points."
	default:
		strategy = "SATURATED MARKET: Very high competition. Success requires exceptional differentiation or consider alternative location."
	}

	return CompetitorAnalysis{
		NearestCompetitor:   &nearestBusiness,
		DistanceToNearest:   &dist,
		Competitors500m:     c500m,
		Competitors1km:      c1km,
		Competitors2km:      c2km,
		MarketSaturation:    math.Min(float64(c1km)/maxExpectedCompetitors, 1.0),
		RecommendedStrategy: strategy,
	}
}

func opportunityVerdict(ca CompetitorAnalysis) (string, float64) {
	switch {
	case ca.Competitors500m == 0:
		return "HIGH OPPORTUNITY: No direct competitors within 500m radius. Ideal location for market entry with first-mover advantage.", 0.92
	case ca.Competitors1km <= 2:
		return "MODERATE-HIGH OPPORTUNITY: Low competition density within 1km. Good potential for market share with proper execution.", 0.78
	case ca.Competitors1km <= 5:
		return "MODERATE OPPORTUNITY: Moderate competition present. Success depends on differentiation and service quality.", 0.62
	default:
		return "CHALLENGING MARKET: High competition density. Requires strong differentiation strategy or consider alternative location.", 0.45
	}
}

// nearbyBusinesses lists up to 10 establishments within 2km of the
// recommended location, nearest first.
func nearbyBusinesses(location Point, businesses []models.Business, points []Point) []NearbyBusiness {
	ranked := WithinRadius(location, points, 2.0)
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}

	nearby := make([]NearbyBusiness, 0, len(ranked))
	for _, r := range ranked {
		b := businesses[r.Point.Index]
		nearby = append(nearby, NearbyBusiness{
			BusinessID:   b.BusinessID,
			BusinessName: b.BusinessName,
			Category:     b.Category,
			Street:       b.Street,
			ZoneType:     b.ZoneType,
			Distance:     r.DistanceKm,
		})
	}
	return nearby
}

// dominantZone labels the recommended location Commercial when at least 3 of
// the 5 nearest businesses sit in a commercial zone.
func dominantZone(nearby []NearbyBusiness) string {
	head := nearby
	if len(head) > 5 {
		head = head[:5]
	}
	commercial := 0
	for _, nb := range head {
		if nb.ZoneType == "Commercial" {
			commercial++
		}
	}
	if commercial >= 3 {
		return "Commercial"
	}
	return "Residential"
}

func formatClusters(businesses []models.Business, clusters []Cluster) []ClusterInfo {
	out := make([]ClusterInfo, 0, len(clusters))
	for _, c := range clusters {
		info := ClusterInfo{
			ID:            c.ID,
			Centroid:      Coordinates{Latitude: c.Centroid.Latitude, Longitude: c.Centroid.Longitude},
			Color:         c.Color,
			BusinessCount: len(c.Points),
			Points:        make([]ClusterPoint, 0, len(c.Points)),
		}
		for _, p := range c.Points {
			b := businesses[p.Index]
			info.Points = append(info.Points, ClusterPoint{
				Latitude:     p.Latitude,
				Longitude:    p.Longitude,
				BusinessID:   b.BusinessID,
				BusinessName: b.BusinessName,
				Category:     b.Category,
			})
		}
		out = append(out, info)
	}
	return out
}
