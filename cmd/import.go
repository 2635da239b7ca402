package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"placewise/internal/store"
)

// importBatchSize is how many rows each upsert carries. Batches run
// strictly sequentially.
const importBatchSize = 500

var importDir string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON snapshot directory into the database",
	Long: `Reads the table files written by export and inserts their rows.
Rows that collide with existing data on the table's natural key are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}
		if importDir == "" {
			return fmt.Errorf("--dir is required")
		}

		if err := appInstance.Primary.EnsureSchema(ctx); err != nil {
			return err
		}

		type tableResult struct {
			table    string
			total    int
			inserted int64
		}
		var results []tableResult

		for _, table := range appInstance.SnapshotStore.Tables() {
			path := filepath.Join(importDir, table+".json")
			raw, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					color.Yellow("No %s.json in snapshot, skipping.", table)
					continue
				}
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			var rows []json.RawMessage
			if err := json.Unmarshal(raw, &rows); err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}

			inserted, err := upsertInBatches(ctx, appInstance.SnapshotStore, table, rows)
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", table, err)
			}

			color.Green("Imported %d/%d rows into %s", inserted, len(rows), table)
			results = append(results, tableResult{table: table, total: len(rows), inserted: inserted})
		}

		summary := tablewriter.NewWriter(os.Stdout)
		summary.SetHeader([]string{"Table", "Rows in snapshot", "Inserted"})
		for _, r := range results {
			summary.Append([]string{r.table, fmt.Sprintf("%d", r.total), fmt.Sprintf("%d", r.inserted)})
		}
		summary.Render()
		return nil
	},
}

// upsertInBatches walks the rows in fixed-size batches, one upsert at a
// time.
func upsertInBatches(ctx context.Context, snapshots store.SnapshotStore, table string, rows []json.RawMessage) (int64, error) {
	var inserted int64
	for start := 0; start < len(rows); start += importBatchSize {
		end := start + importBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		n, err := snapshots.UpsertRows(ctx, table, rows[start:end])
		if err != nil {
			return inserted, err
		}
		inserted += n
	}
	return inserted, nil
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importDir, "dir", "", "Snapshot directory written by export")
}
