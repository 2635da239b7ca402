package store

import (
	"context"
	"encoding/json"

	"placewise/internal/models"
)

// ListBusinessesParams filters and paginates the business registry.
type ListBusinessesParams struct {
	Category string
	ZoneType string
	Skip     int
	Limit    int
}

// BusinessStore is the registry of mapped establishments.
type BusinessStore interface {
	CreateBusiness(ctx context.Context, b *models.Business) error
	GetBusinessByBusinessID(ctx context.Context, businessID int) (*models.Business, error)
	UpdateBusiness(ctx context.Context, b *models.Business) error
	DeleteBusiness(ctx context.Context, businessID int) error
	ListBusinesses(ctx context.Context, params ListBusinessesParams) ([]models.Business, error)
	AllBusinesses(ctx context.Context) ([]models.Business, error)
	ListCategories(ctx context.Context) ([]string, error)
	Statistics(ctx context.Context) (*models.BusinessStatistics, error)
	CategoryDistribution(ctx context.Context) ([]models.CategoryCount, error)
	ZoneDistribution(ctx context.Context) ([]models.ZoneCount, error)
	StreetDistribution(ctx context.Context, limit int) ([]models.StreetCount, error)

	Ping(ctx context.Context) error
}

// UserStore persists registered accounts.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, email, hashedPassword string) error
}

// ResultStore persists clustering runs.
type ResultStore interface {
	SaveClusteringResult(ctx context.Context, r *models.ClusteringResult) error
	ListClusteringResults(ctx context.Context, userID int64, limit int) ([]models.ClusteringResult, error)
	// GetClusteringResult is scoped to the owning user; another user's
	// result reads as not found.
	GetClusteringResult(ctx context.Context, userID, resultID int64) (*models.ClusteringResult, error)
}

// SnapshotStore is the surface the export/import commands run against:
// strictly sequential paginated row reads and conflict-ignoring batched
// upserts over a fixed list of named tables.
type SnapshotStore interface {
	// Tables returns the fixed table list, in export order.
	Tables() []string
	// FetchRows returns one page of rows from the named table as JSON
	// objects, ordered by primary key.
	FetchRows(ctx context.Context, table string, offset, limit int) ([]json.RawMessage, error)
	// UpsertRows inserts a batch of rows into the named table, ignoring
	// duplicates on the table's conflict key. Returns the number of rows
	// actually inserted.
	UpsertRows(ctx context.Context, table string, rows []json.RawMessage) (int64, error)
}
