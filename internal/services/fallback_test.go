package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placewise/internal/models"
	"placewise/pkg/taxonomy"
)

func recInput(c50, c100, b100 int) models.RecommendationInput {
	return models.RecommendationInput{
		BusinessIdea:      "coffee shop",
		ZoneType:          "Commercial",
		BusinessDensity:   models.DensityMetrics{Within100m: b100},
		CompetitorDensity: models.DensityMetrics{Within50m: c50, Within100m: c100},
	}
}

func TestFallbackRecommendation_CompetitionThresholds(t *testing.T) {
	for c50 := 3; c50 <= 10; c50++ {
		bundle := FallbackRecommendation(recInput(c50, 0, 0))
		assert.Equal(t, "High", bundle.BestCluster.Competition, "c50=%d", c50)
	}

	bundle := FallbackRecommendation(recInput(1, 5, 0))
	assert.Equal(t, "Medium", bundle.BestCluster.Competition)

	bundle = FallbackRecommendation(recInput(1, 2, 0))
	assert.Equal(t, "Low", bundle.BestCluster.Competition)
}

func TestFallbackRecommendation_ConfidenceAlwaysClamped(t *testing.T) {
	for c50 := 0; c50 <= 20; c50++ {
		for b100 := 0; b100 <= 30; b100++ {
			bundle := FallbackRecommendation(recInput(c50, c50, b100))
			assert.GreaterOrEqual(t, bundle.Confidence, 60, "c50=%d b100=%d", c50, b100)
			assert.LessOrEqual(t, bundle.Confidence, 95, "c50=%d b100=%d", c50, b100)
		}
	}
}

func TestFallbackRecommendation_ThreeNonIncreasingScores(t *testing.T) {
	for c50 := 0; c50 <= 15; c50++ {
		bundle := FallbackRecommendation(recInput(c50, c50, 10))
		require.Len(t, bundle.Top3Businesses, 3)
		s := bundle.Top3Businesses
		assert.GreaterOrEqual(t, s[0].Score, s[1].Score)
		assert.GreaterOrEqual(t, s[1].Score, s[2].Score)
		assert.GreaterOrEqual(t, s[2].Score, 50)
	}
}

func TestFallbackRecommendation_NoCompetitors(t *testing.T) {
	bundle := FallbackRecommendation(recInput(0, 0, 4))

	assert.Contains(t, bundle.FinalSuggestion, "excellent opportunity")
	assert.Contains(t, bundle.BestCluster.Reason, "No direct competitors nearby")
	assert.Equal(t, "Low", bundle.BestCluster.Competition)
	assert.Equal(t, 90, bundle.Top3Businesses[0].Score)
	assert.Equal(t, clampInt(85+4*2, 60, 95), bundle.Confidence)
}

func TestFallbackRecommendation_ScoreDeductions(t *testing.T) {
	bundle := FallbackRecommendation(recInput(2, 2, 0))
	s := bundle.Top3Businesses
	assert.Equal(t, 80, s[0].Score) // 90 - 2*5
	assert.Equal(t, 74, s[1].Score) // s1 - 6
	assert.Equal(t, 67, s[2].Score) // s2 - 7
}

func TestFallbackRecommendation_UsesClusterAnalyticsName(t *testing.T) {
	in := recInput(0, 0, 0)
	in.ClusterAnalytics = &models.ClusterAnalytics{BestClusterName: "Centro St. cluster"}
	bundle := FallbackRecommendation(in)
	assert.Equal(t, "Centro St. cluster", bundle.BestCluster.Name)
}

func TestFallbackCategory(t *testing.T) {
	res := FallbackCategory("milk tea shop", taxonomy.Advisory)
	assert.Equal(t, "Food and Beverages", res.Category)

	res = FallbackCategory("something unclassifiable", taxonomy.Advisory)
	assert.Equal(t, "Misc", res.Category)
}

func TestFallbackVerdict_Lenient(t *testing.T) {
	v := FallbackVerdict()
	assert.True(t, v.Valid)
	assert.Equal(t, models.ValidationErrorNone, v.ErrorType)
	assert.True(t, strings.Contains(v.Message, "unavailable"))
}
