package models

import (
	"encoding/json"
	"time"
)

// Business is a row from the businesses table: one mapped establishment in
// the barangay dataset.
type Business struct {
	ID           int64     `json:"id"`
	BusinessID   int       `json:"business_id"`
	BusinessName string    `json:"business_name"`
	Category     string    `json:"category"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Street       string    `json:"street"`
	ZoneType     string    `json:"zone_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// User is a registered account. Passwords are stored as bcrypt hashes only.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// ClusteringResult is a persisted clustering run, keyed to the user that
// requested it. Cluster geometry and the nearby-business list are stored as
// raw JSON columns.
type ClusteringResult struct {
	ID                   int64           `json:"id"`
	UserID               int64           `json:"user_id"`
	BusinessCategory     string          `json:"business_category"`
	NumClusters          int             `json:"num_clusters"`
	RecommendedLatitude  float64         `json:"recommended_latitude"`
	RecommendedLongitude float64         `json:"recommended_longitude"`
	RecommendedZoneType  string          `json:"recommended_zone_type"`
	Confidence           float64         `json:"confidence"`
	OpportunityLevel     string          `json:"opportunity_level"`
	TotalBusinesses      int             `json:"total_businesses"`
	CompetitorCount      int             `json:"competitor_count"`
	Competitors500m      int             `json:"competitors_within_500m"`
	Competitors1km       int             `json:"competitors_within_1km"`
	Competitors2km       int             `json:"competitors_within_2km"`
	MarketSaturation     float64         `json:"market_saturation"`
	NearestCompetitorKm  *float64        `json:"nearest_competitor_distance"`
	ClustersData         json.RawMessage `json:"clusters_data"`
	NearbyBusinesses     json.RawMessage `json:"nearby_businesses"`
	CreatedAt            time.Time       `json:"created_at"`
}

// --- Transient AI request/response records ---
//
// Everything below is constructed at the start of a single HTTP request and
// discarded at response time. Nothing is cached across requests.

// ValidationErrorType enumerates the closed set of verdict error types.
type ValidationErrorType string

const (
	ValidationErrorNone         ValidationErrorType = "none"
	ValidationErrorEmpty        ValidationErrorType = "empty"
	ValidationErrorNonsense     ValidationErrorType = "nonsense"
	ValidationErrorProhibited   ValidationErrorType = "prohibited"
	ValidationErrorUnrecognized ValidationErrorType = "unrecognized"
)

// ValidationVerdict is the result of validating a free-text business idea.
// Invariant: Valid == true implies ErrorType == "none".
type ValidationVerdict struct {
	Valid     bool                `json:"valid"`
	ErrorType ValidationErrorType `json:"errorType"`
	Message   string              `json:"message"`
	Reason    string              `json:"reason,omitempty"`
}

// DensityMetrics carries upstream-computed establishment counts around a
// candidate location. This service consumes them; it never computes them.
type DensityMetrics struct {
	Within50m  int `json:"within_50m"`
	Within100m int `json:"within_100m"`
}

// NearbyPlace is one entry of the nearby-business / nearby-competitor lists
// attached to a recommendation request.
type NearbyPlace struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Distance float64 `json:"distance,omitempty"`
}

// ClusterAnalytics is the optional upstream cluster profile attached to a
// recommendation request.
type ClusterAnalytics struct {
	BestClusterName  string  `json:"best_cluster_name,omitempty"`
	BusinessCount    int     `json:"business_count,omitempty"`
	CompetitorCount  int     `json:"competitor_count,omitempty"`
	OpportunityLevel string  `json:"opportunity_level,omitempty"`
	MarketSaturation float64 `json:"market_saturation,omitempty"`
}

// RecommendationInput is the structured context for one recommendation
// request.
type RecommendationInput struct {
	BusinessIdea      string            `json:"businessIdea"`
	Latitude          *float64          `json:"latitude,omitempty"`
	Longitude         *float64          `json:"longitude,omitempty"`
	ZoneType          string            `json:"zoneType,omitempty"`
	BusinessDensity   DensityMetrics    `json:"businessDensity"`
	CompetitorDensity DensityMetrics    `json:"competitorDensity"`
	NearbyBusinesses  []NearbyPlace     `json:"nearbyBusinesses,omitempty"`
	NearbyCompetitors []NearbyPlace     `json:"nearbyCompetitors,omitempty"`
	ClusterAnalytics  *ClusterAnalytics `json:"clusterAnalytics,omitempty"`
}

// ClusterPick names the recommended cluster and why it won.
type ClusterPick struct {
	Name        string `json:"name"`
	Competition string `json:"competition"`
	Reason      string `json:"reason"`
}

// BusinessSuggestion is one ranked entry of the top-3 list.
type BusinessSuggestion struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Fit         string `json:"fit"`
	Opportunity string `json:"opportunity"`
	Reason      string `json:"reason"`
}

// RecommendationBundle is the full recommendation payload. Invariant:
// exactly three suggestions, confidence in [0,100].
type RecommendationBundle struct {
	BestCluster     ClusterPick          `json:"best_cluster"`
	Top3Businesses  []BusinessSuggestion `json:"top_3_businesses"`
	ClusterSummary  string               `json:"cluster_summary"`
	FinalSuggestion string               `json:"final_suggestion"`
	Confidence      int                  `json:"confidence"`
}

// CategoryResult is the outcome of classifying an idea onto a closed
// taxonomy.
type CategoryResult struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// --- Aggregations (analytics endpoints) ---

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type ZoneCount struct {
	ZoneType string `json:"zone_type"`
	Count    int    `json:"count"`
}

type StreetCount struct {
	Street string `json:"street"`
	Count  int    `json:"count"`
}

type BusinessStatistics struct {
	TotalBusinesses      int             `json:"total_businesses"`
	TotalCategories      int             `json:"total_categories"`
	CommercialZones      int             `json:"commercial_zones"`
	ResidentialZones     int             `json:"residential_zones"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
}

type AnalyticsOverview struct {
	TotalBusinesses  int           `json:"total_businesses"`
	TotalCategories  int           `json:"total_categories"`
	CommercialZones  int           `json:"commercial_zones"`
	ResidentialZones int           `json:"residential_zones"`
	AvgPerCategory   float64       `json:"avg_per_category"`
	TopCategory      CategoryCount `json:"top_category"`
	TopStreet        StreetCount   `json:"top_street"`
}
