package primary

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"placewise/internal/models"
	"placewise/internal/store"
)

// CreateBusiness inserts one establishment into the registry.
func (s *StoreImpl) CreateBusiness(ctx context.Context, b *models.Business) error {
	query := `
		INSERT INTO businesses (business_id, business_name, category, latitude, longitude, street, zone_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query,
		b.BusinessID, b.BusinessName, b.Category, b.Latitude, b.Longitude, b.Street, b.ZoneType,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("business %d: %w", b.BusinessID, store.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert business: %w", err)
	}
	return nil
}

// GetBusinessByBusinessID looks up one establishment by its dataset ID.
func (s *StoreImpl) GetBusinessByBusinessID(ctx context.Context, businessID int) (*models.Business, error) {
	query := `
		SELECT id, business_id, business_name, category, latitude, longitude, street, zone_type, created_at
		FROM businesses
		WHERE business_id = $1`

	var b models.Business
	err := s.db.QueryRow(ctx, query, businessID).Scan(
		&b.ID, &b.BusinessID, &b.BusinessName, &b.Category,
		&b.Latitude, &b.Longitude, &b.Street, &b.ZoneType, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("business %d: %w", businessID, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	return &b, nil
}

// UpdateBusiness rewrites the mutable columns of one establishment, keyed by
// its dataset ID.
func (s *StoreImpl) UpdateBusiness(ctx context.Context, b *models.Business) error {
	query := `
		UPDATE businesses
		SET business_name = $2, category = $3, latitude = $4, longitude = $5, street = $6, zone_type = $7
		WHERE business_id = $1`

	tag, err := s.db.Exec(ctx, query,
		b.BusinessID, b.BusinessName, b.Category, b.Latitude, b.Longitude, b.Street, b.ZoneType,
	)
	if err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("business %d: %w", b.BusinessID, store.ErrNotFound)
	}
	return nil
}

// DeleteBusiness removes one establishment by its dataset ID.
func (s *StoreImpl) DeleteBusiness(ctx context.Context, businessID int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM businesses WHERE business_id = $1`, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("business %d: %w", businessID, store.ErrNotFound)
	}
	return nil
}

// ListBusinesses returns a filtered, paginated page of the registry.
func (s *StoreImpl) ListBusinesses(ctx context.Context, params store.ListBusinessesParams) ([]models.Business, error) {
	query := `
		SELECT id, business_id, business_name, category, latitude, longitude, street, zone_type, created_at
		FROM businesses
		WHERE ($1 = '' OR category ILIKE $1)
		  AND ($2 = '' OR zone_type ILIKE $2)
		ORDER BY business_id
		OFFSET $3 LIMIT $4`

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(ctx, query, params.Category, params.ZoneType, params.Skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinesses(rows)
}

// AllBusinesses returns the entire registry, ordered by dataset ID. The
// clustering endpoints work on the full set.
func (s *StoreImpl) AllBusinesses(ctx context.Context) ([]models.Business, error) {
	query := `
		SELECT id, business_id, business_name, category, latitude, longitude, street, zone_type, created_at
		FROM businesses
		ORDER BY business_id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinesses(rows)
}

func scanBusinesses(rows pgx.Rows) ([]models.Business, error) {
	var businesses []models.Business
	for rows.Next() {
		var b models.Business
		if err := rows.Scan(
			&b.ID, &b.BusinessID, &b.BusinessName, &b.Category,
			&b.Latitude, &b.Longitude, &b.Street, &b.ZoneType, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business rows: %w", err)
	}
	return businesses, nil
}

// ListCategories returns the distinct categories present in the registry.
func (s *StoreImpl) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT category FROM businesses ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Statistics aggregates registry-wide counts for the stats endpoint.
func (s *StoreImpl) Statistics(ctx context.Context) (*models.BusinessStatistics, error) {
	var stats models.BusinessStatistics
	query := `
		SELECT COUNT(*),
		       COUNT(DISTINCT category),
		       COUNT(*) FILTER (WHERE zone_type = 'Commercial'),
		       COUNT(*) FILTER (WHERE zone_type = 'Residential')
		FROM businesses`

	err := s.db.QueryRow(ctx, query).Scan(
		&stats.TotalBusinesses, &stats.TotalCategories,
		&stats.CommercialZones, &stats.ResidentialZones,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	stats.CategoryDistribution, err = s.CategoryDistribution(ctx)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// CategoryDistribution counts establishments per category, most common first.
func (s *StoreImpl) CategoryDistribution(ctx context.Context) ([]models.CategoryCount, error) {
	query := `SELECT category, COUNT(*) FROM businesses GROUP BY category ORDER BY COUNT(*) DESC, category`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category distribution: %w", err)
	}
	defer rows.Close()

	var counts []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ZoneDistribution counts establishments per zone type.
func (s *StoreImpl) ZoneDistribution(ctx context.Context) ([]models.ZoneCount, error) {
	query := `SELECT zone_type, COUNT(*) FROM businesses GROUP BY zone_type ORDER BY COUNT(*) DESC, zone_type`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to compute zone distribution: %w", err)
	}
	defer rows.Close()

	var counts []models.ZoneCount
	for rows.Next() {
		var c models.ZoneCount
		if err := rows.Scan(&c.ZoneType, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan zone count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// StreetDistribution counts establishments per street, busiest first.
func (s *StoreImpl) StreetDistribution(ctx context.Context, limit int) ([]models.StreetCount, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `SELECT street, COUNT(*) FROM businesses GROUP BY street ORDER BY COUNT(*) DESC, street LIMIT $1`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute street distribution: %w", err)
	}
	defer rows.Close()

	var counts []models.StreetCount
	for rows.Next() {
		var c models.StreetCount
		if err := rows.Scan(&c.Street, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan street count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
