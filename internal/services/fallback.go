package services

import (
	"fmt"
	"strings"

	"placewise/internal/models"
	"placewise/pkg/taxonomy"
)

// The fallback generator produces results of the exact same shape as the
// normalizer's success path using only locally available inputs. It is
// invoked when the completion call errors, the credential is missing, or the
// generated text cannot be parsed. Callers never observe a different
// response shape on failure.

const (
	competitionHigh   = "High"
	competitionMedium = "Medium"
	competitionLow    = "Low"

	// Thresholds on upstream competitor densities.
	highCompetitorsAt50m    = 3
	mediumCompetitorsAt100m = 5
)

// FallbackRecommendation derives a recommendation bundle from the density
// metrics alone.
func FallbackRecommendation(in models.RecommendationInput) models.RecommendationBundle {
	c50 := in.CompetitorDensity.Within50m
	b100 := in.BusinessDensity.Within100m
	idea := strings.TrimSpace(in.BusinessIdea)

	competition := competitionLow
	switch {
	case c50 >= highCompetitorsAt50m:
		competition = competitionHigh
	case in.CompetitorDensity.Within100m >= mediumCompetitorsAt100m:
		competition = competitionMedium
	}

	zone := in.ZoneType
	if strings.TrimSpace(zone) == "" {
		zone = "Mixed"
	}

	clusterName := fmt.Sprintf("%s cluster near requested location", zone)
	if in.ClusterAnalytics != nil && in.ClusterAnalytics.BestClusterName != "" {
		clusterName = in.ClusterAnalytics.BestClusterName
	}

	var reason, finalSuggestion string
	switch {
	case c50 == 0:
		reason = "No direct competitors nearby within 50m; strong first-mover position."
		finalSuggestion = fmt.Sprintf("Opening %q here is an excellent opportunity: no direct competitors were found in the immediate area.", idea)
	case competition == competitionHigh:
		reason = fmt.Sprintf("%d direct competitors within 50m; the immediate area is crowded.", c50)
		finalSuggestion = fmt.Sprintf("%q faces heavy direct competition here; consider a nearby location or a strong differentiator.", idea)
	case competition == competitionMedium:
		reason = "Moderate competitor presence within 100m; differentiation will matter."
		finalSuggestion = fmt.Sprintf("%q is viable here with clear differentiation from the existing competitors.", idea)
	default:
		reason = "Low competitor presence in the surrounding area."
		finalSuggestion = fmt.Sprintf("%q is a good fit for this location given the low competition.", idea)
	}

	// Base score drops with immediate competition; each subsequent
	// suggestion sits a fixed step lower, and all three are floored so the
	// list stays non-increasing.
	s1 := floorInt(90-c50*5, 60)
	s2 := floorInt(s1-6, 55)
	s3 := floorInt(s2-7, 50)

	return models.RecommendationBundle{
		BestCluster: models.ClusterPick{
			Name:        clusterName,
			Competition: competition,
			Reason:      reason,
		},
		Top3Businesses: []models.BusinessSuggestion{
			{
				Name:        idea,
				Score:       s1,
				Fit:         "High",
				Opportunity: opportunityLabel(competition),
				Reason:      "Matches the requested concept for this area.",
			},
			{
				Name:        complementarySuggestion(zone, 0),
				Score:       s2,
				Fit:         "Moderate",
				Opportunity: opportunityLabel(competition),
				Reason:      fmt.Sprintf("Common gap in %s zones with this business mix.", zone),
			},
			{
				Name:        complementarySuggestion(zone, 1),
				Score:       s3,
				Fit:         "Moderate",
				Opportunity: opportunityLabel(competition),
				Reason:      "Low-overhead alternative suited to the surrounding foot traffic.",
			},
		},
		ClusterSummary: fmt.Sprintf("%d businesses within 100m, %d direct competitors within 50m; competition is %s.",
			b100, c50, strings.ToLower(competition)),
		FinalSuggestion: finalSuggestion,
		Confidence:      clampInt(85-c50*5+b100*2, 60, 95),
	}
}

// FallbackCategory resolves the idea text itself through the taxonomy's
// synonym rules, defaulting to the catch-all bucket.
func FallbackCategory(idea string, tax taxonomy.Taxonomy) models.CategoryResult {
	return models.CategoryResult{
		Category:   tax.Resolve(idea),
		Confidence: 0.5,
	}
}

// FallbackVerdict is lenient by default: when the validation service is
// unreachable, availability is favored over strictness.
func FallbackVerdict() models.ValidationVerdict {
	return models.ValidationVerdict{
		Valid:     true,
		ErrorType: models.ValidationErrorNone,
		Message:   "Validation service unavailable; input accepted.",
	}
}

func opportunityLabel(competition string) string {
	switch competition {
	case competitionHigh:
		return "Challenging"
	case competitionMedium:
		return "Moderate"
	default:
		return "Strong"
	}
}

var complementsByZone = map[string][2]string{
	"Commercial":  {"Food and beverage stall", "Convenience retail store"},
	"Residential": {"Sari-sari store", "Laundry service"},
	"Mixed":       {"Coffee shop", "Personal services shop"},
}

func complementarySuggestion(zone string, idx int) string {
	pair, ok := complementsByZone[zone]
	if !ok {
		pair = complementsByZone["Mixed"]
	}
	return pair[idx]
}

func floorInt(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
