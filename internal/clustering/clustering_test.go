package clustering

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placewise/internal/models"
)

func TestDistance(t *testing.T) {
	// Same point.
	assert.InDelta(t, 0, Distance(14.8373, 120.9558, 14.8373, 120.9558), 1e-9)

	// Manila to Quezon City city halls, roughly 10km.
	d := Distance(14.5995, 120.9842, 14.6760, 121.0437)
	assert.InDelta(t, 10.7, d, 1.0)

	// One degree of latitude is about 111km.
	d = Distance(0, 0, 1, 0)
	assert.InDelta(t, 111.2, d, 0.5)
}

func TestCentroid(t *testing.T) {
	_, ok := Centroid(nil)
	assert.False(t, ok)

	single := []Point{{Latitude: 14.8, Longitude: 120.9}}
	c, ok := Centroid(single)
	require.True(t, ok)
	assert.Equal(t, single[0].Latitude, c.Latitude)

	// Symmetric pair: centroid sits in the middle.
	pair := []Point{
		{Latitude: 14.80, Longitude: 120.90},
		{Latitude: 14.90, Longitude: 120.90},
	}
	c, ok = Centroid(pair)
	require.True(t, ok)
	assert.InDelta(t, 14.85, c.Latitude, 1e-3)
	assert.InDelta(t, 120.90, c.Longitude, 1e-3)
}

func TestCountWithinRadiusAndNearest(t *testing.T) {
	center := Point{Latitude: 14.8373, Longitude: 120.9558}
	points := []Point{
		{Latitude: 14.8374, Longitude: 120.9559, Index: 0}, // ~15m
		{Latitude: 14.8390, Longitude: 120.9570, Index: 1}, // ~230m
		{Latitude: 14.9000, Longitude: 121.0000, Index: 2}, // ~8km
	}

	assert.Equal(t, 2, CountWithinRadius(center, points, 0.5))
	assert.Equal(t, 3, CountWithinRadius(center, points, 10))

	nearest, dist, ok := Nearest(center, points)
	require.True(t, ok)
	assert.Equal(t, 0, nearest.Index)
	assert.Less(t, dist, 0.05)

	_, _, ok = Nearest(center, nil)
	assert.False(t, ok)
}

func TestWithinRadius_SortedNearestFirst(t *testing.T) {
	center := Point{Latitude: 14.8373, Longitude: 120.9558}
	points := []Point{
		{Latitude: 14.8390, Longitude: 120.9570, Index: 1},
		{Latitude: 14.8374, Longitude: 120.9559, Index: 0},
	}

	ranked := WithinRadius(center, points, 1.0)
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].Point.Index)
	assert.LessOrEqual(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
}

// Two well-separated synthetic blobs must converge to two clusters with one
// centroid in each blob.
func TestKMeans_ConvergesOnSeparatedBlobs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var points []Point
	for i := 0; i < 20; i++ {
		points = append(points, Point{
			Latitude:  14.80 + rng.Float64()*0.002,
			Longitude: 120.90 + rng.Float64()*0.002,
			Index:     i,
		})
	}
	for i := 0; i < 20; i++ {
		points = append(points, Point{
			Latitude:  14.90 + rng.Float64()*0.002,
			Longitude: 121.00 + rng.Float64()*0.002,
			Index:     20 + i,
		})
	}

	clusters, iterations := KMeans(points, 2, rand.New(rand.NewSource(7)))
	require.Len(t, clusters, 2)
	assert.Greater(t, iterations, 0)
	assert.LessOrEqual(t, iterations, 100)

	total := 0
	for _, c := range clusters {
		total += len(c.Points)
		// Every centroid must sit inside one of the two blobs.
		inFirst := Distance(c.Centroid.Latitude, c.Centroid.Longitude, 14.801, 120.901) < 2
		inSecond := Distance(c.Centroid.Latitude, c.Centroid.Longitude, 14.901, 121.001) < 2
		assert.True(t, inFirst || inSecond)
	}
	assert.Equal(t, 40, total)
}

func TestKMeans_MoreClustersThanPoints(t *testing.T) {
	points := []Point{
		{Latitude: 14.8, Longitude: 120.9, Index: 0},
		{Latitude: 14.9, Longitude: 121.0, Index: 1},
	}
	clusters, _ := KMeans(points, 5, rand.New(rand.NewSource(1)))
	assert.Len(t, clusters, 2)
}

func testBusinesses() []models.Business {
	return []models.Business{
		{BusinessID: 1, BusinessName: "VK Cafe", Category: "Cafe", Latitude: 14.83335, Longitude: 120.95478, Street: "Gulod St.", ZoneType: "Commercial"},
		{BusinessID: 2, BusinessName: "Dalen's Store", Category: "Retail", Latitude: 14.83477, Longitude: 120.95515, Street: "Luwasan St.", ZoneType: "Commercial"},
		{BusinessID: 3, BusinessName: "Centro Eatery", Category: "Restaurant", Latitude: 14.83574, Longitude: 120.95533, Street: "Centro St.", ZoneType: "Commercial"},
		{BusinessID: 4, BusinessName: "Mr. BREWSKO", Category: "Cafe", Latitude: 14.83515, Longitude: 120.9551, Street: "Luwasan St.", ZoneType: "Commercial"},
		{BusinessID: 5, BusinessName: "JLM's STORE", Category: "Retail", Latitude: 14.83183, Longitude: 120.96242, Street: "Mapayapa St.", ZoneType: "Residential"},
		{BusinessID: 6, BusinessName: "Garage Gym", Category: "Services", Latitude: 14.83868, Longitude: 120.9508, Street: "Sonoma Residences", ZoneType: "Residential"},
	}
}

func TestAnalyze_EmptyRegistry(t *testing.T) {
	_, err := Analyze(nil, "Cafe", 3, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoBusinesses)
}

func TestAnalyze(t *testing.T) {
	result, err := Analyze(testBusinesses(), "Cafe", 2, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.Len(t, result.Clusters, 2)
	assert.Equal(t, 6, result.Analysis.TotalBusinesses)
	assert.Equal(t, 2, result.Analysis.CompetitorCount)
	assert.NotZero(t, result.RecommendedLocation.Latitude)
	assert.Contains(t, []string{"Commercial", "Residential"}, result.ZoneType)
	assert.NotEmpty(t, result.Analysis.Opportunity)
	assert.GreaterOrEqual(t, result.Analysis.Confidence, 0.45)
	assert.LessOrEqual(t, result.Analysis.Confidence, 0.92)
	assert.NotEmpty(t, result.CompetitorAnalysis.RecommendedStrategy)
	assert.LessOrEqual(t, len(result.NearbyBusinesses), 10)

	// Nearby businesses come back nearest first.
	for i := 1; i < len(result.NearbyBusinesses); i++ {
		assert.LessOrEqual(t, result.NearbyBusinesses[i-1].Distance, result.NearbyBusinesses[i].Distance)
	}
}

func TestAnalyze_NoCompetitorsIsFirstMover(t *testing.T) {
	result, err := Analyze(testBusinesses(), "Bakery", 2, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Analysis.CompetitorCount)
	assert.Contains(t, result.CompetitorAnalysis.RecommendedStrategy, "FIRST MOVER")
	assert.Nil(t, result.CompetitorAnalysis.NearestCompetitor)
	assert.Equal(t, 0.92, result.Analysis.Confidence)
	assert.InDelta(t, 0, result.CompetitorAnalysis.MarketSaturation, 1e-9)
}

func TestMarketSaturationCap(t *testing.T) {
	// 15 competitors at the same spot: saturation caps at 1.
	var businesses []models.Business
	for i := 0; i < 15; i++ {
		businesses = append(businesses, models.Business{
			BusinessID: i + 1, BusinessName: "Cafe", Category: "Cafe",
			Latitude: 14.8373, Longitude: 120.9558, ZoneType: "Commercial",
		})
	}
	result, err := Analyze(businesses, "Cafe", 2, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.CompetitorAnalysis.MarketSaturation)
}
