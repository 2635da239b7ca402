package primary

import (
	"context"
	"encoding/json"
	"fmt"

	"placewise/internal/store"
)

// snapshotTables lists the exportable tables in dependency order: users
// before clustering_results so imported results can resolve their foreign
// key.
var snapshotTables = []string{"users", "businesses", "clustering_results"}

// tableSpec drives the generic fetch/upsert SQL for one snapshot table.
type tableSpec struct {
	// columns is the jsonb_to_recordset column definition list.
	columns string
	// insertColumns is the column list for the INSERT, matching columns.
	insertColumns string
	// conflictKey is the unique key duplicates are ignored on.
	conflictKey string
}

var snapshotSpecs = map[string]tableSpec{
	"users": {
		columns:       `id BIGINT, email TEXT, name TEXT, hashed_password TEXT, is_active BOOLEAN, created_at TIMESTAMPTZ`,
		insertColumns: `id, email, name, hashed_password, is_active, created_at`,
		conflictKey:   "email",
	},
	"businesses": {
		columns:       `id BIGINT, business_id INTEGER, business_name TEXT, category TEXT, latitude DOUBLE PRECISION, longitude DOUBLE PRECISION, street TEXT, zone_type TEXT, created_at TIMESTAMPTZ`,
		insertColumns: `id, business_id, business_name, category, latitude, longitude, street, zone_type, created_at`,
		conflictKey:   "business_id",
	},
	"clustering_results": {
		columns: `id BIGINT, user_id BIGINT, business_category TEXT, num_clusters INTEGER,
			recommended_latitude DOUBLE PRECISION, recommended_longitude DOUBLE PRECISION, recommended_zone_type TEXT,
			confidence DOUBLE PRECISION, opportunity_level TEXT,
			total_businesses INTEGER, competitor_count INTEGER,
			competitors_within_500m INTEGER, competitors_within_1km INTEGER, competitors_within_2km INTEGER,
			market_saturation DOUBLE PRECISION, nearest_competitor_distance DOUBLE PRECISION,
			clusters_data JSONB, nearby_businesses JSONB, created_at TIMESTAMPTZ`,
		insertColumns: `id, user_id, business_category, num_clusters,
			recommended_latitude, recommended_longitude, recommended_zone_type,
			confidence, opportunity_level,
			total_businesses, competitor_count,
			competitors_within_500m, competitors_within_1km, competitors_within_2km,
			market_saturation, nearest_competitor_distance,
			clusters_data, nearby_businesses, created_at`,
		conflictKey: "id",
	},
}

// Tables returns the fixed snapshot table list, in export order.
func (s *StoreImpl) Tables() []string {
	out := make([]string, len(snapshotTables))
	copy(out, snapshotTables)
	return out
}

// FetchRows returns one page of rows from the named table as JSON objects,
// ordered by primary key. Pages are fetched strictly sequentially by the
// export command.
func (s *StoreImpl) FetchRows(ctx context.Context, table string, offset, limit int) ([]json.RawMessage, error) {
	if _, ok := snapshotSpecs[table]; !ok {
		return nil, fmt.Errorf("%s: %w", table, store.ErrUnknownTable)
	}

	// Table name is validated against the fixed list above, never caller
	// input, so interpolation is safe here.
	query := fmt.Sprintf(`SELECT row_to_json(t) FROM %s t ORDER BY id OFFSET $1 LIMIT $2`, table)

	rows, err := s.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rows from %s: %w", table, err)
	}
	defer rows.Close()

	var out []json.RawMessage
	for rows.Next() {
		var raw json.RawMessage
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", table, err)
		}
		out = append(out, raw)
	}
	return out, rows.Err()
}

// UpsertRows inserts a batch of exported rows into the named table, skipping
// rows that collide on the table's natural key. Returns the number of rows
// actually inserted.
func (s *StoreImpl) UpsertRows(ctx context.Context, table string, rows []json.RawMessage) (int64, error) {
	spec, ok := snapshotSpecs[table]
	if !ok {
		return 0, fmt.Errorf("%s: %w", table, store.ErrUnknownTable)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	batch, err := json.Marshal(rows)
	if err != nil {
		return 0, fmt.Errorf("failed to encode batch for %s: %w", table, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		SELECT %s FROM jsonb_to_recordset($1::jsonb) AS r(%s)
		ON CONFLICT (%s) DO NOTHING`,
		table, spec.insertColumns, spec.insertColumns, spec.columns, spec.conflictKey)

	tag, err := s.db.Exec(ctx, query, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert rows into %s: %w", table, err)
	}

	// Imported rows carry explicit ids; keep the sequences ahead of them.
	seqQuery := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', 'id'), GREATEST(COALESCE(MAX(id), 1), 1)) FROM %s`,
		table, table)
	if _, err := s.db.Exec(ctx, seqQuery); err != nil {
		return tag.RowsAffected(), fmt.Errorf("failed to advance %s id sequence: %w", table, err)
	}

	return tag.RowsAffected(), nil
}
