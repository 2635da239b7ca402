// Package prompt renders the deterministic text prompts submitted to the
// generative-text service. Every template instructs the model to answer with
// a bare JSON object and no markdown fencing; the normalizer still assumes
// the model may ignore that.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"placewise/internal/models"
	"placewise/pkg/taxonomy"
)

const (
	// List heads rendered into the recommendation prompt. Longer lists are
	// truncated; the model does not need the full neighborhood.
	maxNearbyBusinesses  = 10
	maxNearbyCompetitors = 5

	defaultZoneType    = "Unknown"
	defaultCoordinates = "Not specified"
	defaultCompetition = "Moderate"
)

// BuildCategorize renders the classification prompt for the given taxonomy.
func BuildCategorize(idea string, tax taxonomy.Taxonomy) string {
	var b strings.Builder
	b.WriteString("You are classifying a business idea into exactly one category.\n")
	fmt.Fprintf(&b, "Business idea: %q\n\n", strings.TrimSpace(idea))
	fmt.Fprintf(&b, "Allowed categories: %s\n", strings.Join(tax.Labels, ", "))
	fmt.Fprintf(&b, "If none fit, use %q.\n\n", tax.Default)
	b.WriteString("Respond with ONLY a JSON object, no markdown fences, no commentary:\n")
	b.WriteString(`{"category": "<one of the allowed categories>", "confidence": <0.0-1.0>}`)
	return b.String()
}

// BuildValidate renders the semantic validation prompt. Local heuristics run
// before this; the model only decides whether the text describes a
// recognizable, legitimate business.
func BuildValidate(idea string) string {
	var b strings.Builder
	b.WriteString("Decide whether the following text describes a coherent, legitimate business idea.\n")
	fmt.Fprintf(&b, "Text: %q\n\n", strings.TrimSpace(idea))
	b.WriteString("Rules:\n")
	b.WriteString("- valid=false with errorType \"unrecognized\" if the text is not a recognizable business concept.\n")
	b.WriteString("- valid=false with errorType \"prohibited\" if the business would be illegal or restricted.\n")
	b.WriteString("- otherwise valid=true with errorType \"none\".\n\n")
	b.WriteString("Respond with ONLY a JSON object, no markdown fences, no commentary:\n")
	b.WriteString(`{"valid": <true|false>, "errorType": "none|unrecognized|prohibited", "message": "<short user-facing message>", "reason": "<short explanation>"}`)
	return b.String()
}

// BuildRecommend renders the location-recommendation prompt from the
// upstream clustering metrics. Missing optional fields are substituted with
// documented defaults rather than omitted, so prompts stay structurally
// identical across requests.
func BuildRecommend(in models.RecommendationInput) string {
	var b strings.Builder
	b.WriteString("You are a business-location analyst. Recommend where and what to open based on the metrics below.\n\n")

	fmt.Fprintf(&b, "Business idea: %q\n", strings.TrimSpace(in.BusinessIdea))
	fmt.Fprintf(&b, "Coordinates: %s\n", formatCoordinates(in.Latitude, in.Longitude))
	fmt.Fprintf(&b, "Zone type: %s\n", orDefault(in.ZoneType, defaultZoneType))
	fmt.Fprintf(&b, "Businesses within 50m: %d, within 100m: %d\n",
		in.BusinessDensity.Within50m, in.BusinessDensity.Within100m)
	fmt.Fprintf(&b, "Competitors within 50m: %d, within 100m: %d\n",
		in.CompetitorDensity.Within50m, in.CompetitorDensity.Within100m)

	b.WriteString("\nNearby businesses:\n")
	b.WriteString(formatPlaceList(in.NearbyBusinesses, maxNearbyBusinesses))
	b.WriteString("\nNearby competitors:\n")
	b.WriteString(formatPlaceList(in.NearbyCompetitors, maxNearbyCompetitors))

	b.WriteString("\nCluster profile:\n")
	b.WriteString(formatClusterAnalytics(in.ClusterAnalytics))

	b.WriteString("\nRespond with ONLY a JSON object, no markdown fences, no commentary:\n")
	b.WriteString(`{
  "best_cluster": {"name": "...", "competition": "Low|Moderate|High", "reason": "..."},
  "top_3_businesses": [{"name": "...", "score": <0-100>, "fit": "...", "opportunity": "...", "reason": "..."}],
  "cluster_summary": "...",
  "final_suggestion": "...",
  "confidence": <0-100>
}`)
	b.WriteString("\ntop_3_businesses must contain exactly 3 entries ranked best first.")
	return b.String()
}

func formatCoordinates(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return defaultCoordinates
	}
	return strconv.FormatFloat(*lat, 'f', -1, 64) + ", " + strconv.FormatFloat(*lon, 'f', -1, 64)
}

// formatPlaceList renders up to limit entries as "1. Name (Category)" lines.
func formatPlaceList(places []models.NearbyPlace, limit int) string {
	if len(places) == 0 {
		return "None listed\n"
	}
	if len(places) > limit {
		places = places[:limit]
	}

	var b strings.Builder
	for i, p := range places {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, p.Name, orDefault(p.Category, "Uncategorized"))
	}
	return b.String()
}

func formatClusterAnalytics(ca *models.ClusterAnalytics) string {
	if ca == nil {
		return "Not specified\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Best cluster: %s\n", orDefault(ca.BestClusterName, defaultCoordinates))
	fmt.Fprintf(&b, "Businesses in cluster: %d, competitors: %d\n", ca.BusinessCount, ca.CompetitorCount)
	fmt.Fprintf(&b, "Opportunity level: %s\n", orDefault(ca.OpportunityLevel, defaultCompetition))
	fmt.Fprintf(&b, "Market saturation: %s\n", strconv.FormatFloat(ca.MarketSaturation, 'f', -1, 64))
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
