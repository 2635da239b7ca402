package primary

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"placewise/internal/models"
	"placewise/internal/store"
)

// SaveClusteringResult persists one clustering run for a user.
func (s *StoreImpl) SaveClusteringResult(ctx context.Context, r *models.ClusteringResult) error {
	query := `
		INSERT INTO clustering_results (
			user_id, business_category, num_clusters,
			recommended_latitude, recommended_longitude, recommended_zone_type,
			confidence, opportunity_level,
			total_businesses, competitor_count,
			competitors_within_500m, competitors_within_1km, competitors_within_2km,
			market_saturation, nearest_competitor_distance,
			clusters_data, nearby_businesses
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query,
		r.UserID, r.BusinessCategory, r.NumClusters,
		r.RecommendedLatitude, r.RecommendedLongitude, r.RecommendedZoneType,
		r.Confidence, r.OpportunityLevel,
		r.TotalBusinesses, r.CompetitorCount,
		r.Competitors500m, r.Competitors1km, r.Competitors2km,
		r.MarketSaturation, r.NearestCompetitorKm,
		r.ClustersData, r.NearbyBusinesses,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save clustering result: %w", err)
	}
	return nil
}

// GetClusteringResult loads one saved run. The user filter makes another
// user's result indistinguishable from a missing one.
func (s *StoreImpl) GetClusteringResult(ctx context.Context, userID, resultID int64) (*models.ClusteringResult, error) {
	query := `
		SELECT id, user_id, business_category, num_clusters,
		       recommended_latitude, recommended_longitude, recommended_zone_type,
		       confidence, opportunity_level,
		       total_businesses, competitor_count,
		       competitors_within_500m, competitors_within_1km, competitors_within_2km,
		       market_saturation, nearest_competitor_distance,
		       clusters_data, nearby_businesses, created_at
		FROM clustering_results
		WHERE id = $1 AND user_id = $2`

	var r models.ClusteringResult
	err := s.db.QueryRow(ctx, query, resultID, userID).Scan(
		&r.ID, &r.UserID, &r.BusinessCategory, &r.NumClusters,
		&r.RecommendedLatitude, &r.RecommendedLongitude, &r.RecommendedZoneType,
		&r.Confidence, &r.OpportunityLevel,
		&r.TotalBusinesses, &r.CompetitorCount,
		&r.Competitors500m, &r.Competitors1km, &r.Competitors2km,
		&r.MarketSaturation, &r.NearestCompetitorKm,
		&r.ClustersData, &r.NearbyBusinesses, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("clustering result %d: %w", resultID, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get clustering result: %w", err)
	}
	return &r, nil
}

// ListClusteringResults returns a user's saved runs, newest first.
func (s *StoreImpl) ListClusteringResults(ctx context.Context, userID int64, limit int) ([]models.ClusteringResult, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT id, user_id, business_category, num_clusters,
		       recommended_latitude, recommended_longitude, recommended_zone_type,
		       confidence, opportunity_level,
		       total_businesses, competitor_count,
		       competitors_within_500m, competitors_within_1km, competitors_within_2km,
		       market_saturation, nearest_competitor_distance,
		       clusters_data, nearby_businesses, created_at
		FROM clustering_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list clustering results: %w", err)
	}
	defer rows.Close()

	var results []models.ClusteringResult
	for rows.Next() {
		var r models.ClusteringResult
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.BusinessCategory, &r.NumClusters,
			&r.RecommendedLatitude, &r.RecommendedLongitude, &r.RecommendedZoneType,
			&r.Confidence, &r.OpportunityLevel,
			&r.TotalBusinesses, &r.CompetitorCount,
			&r.Competitors500m, &r.Competitors1km, &r.Competitors2km,
			&r.MarketSaturation, &r.NearestCompetitorKm,
			&r.ClustersData, &r.NearbyBusinesses, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan clustering result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
