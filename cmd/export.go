package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"placewise/internal/store"
)

// exportPageSize is how many rows each fetch pulls. Pages are fetched
// strictly sequentially.
const exportPageSize = 1000

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the database tables to a JSON snapshot directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return err
		}

		snapshotID := uuid.New().String()
		dir := filepath.Join(exportDir, snapshotID)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}

		type tableResult struct {
			table string
			rows  int
		}
		var results []tableResult

		for _, table := range appInstance.SnapshotStore.Tables() {
			rows, err := fetchAllRows(ctx, appInstance.SnapshotStore, table)
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", table, err)
			}

			path := filepath.Join(dir, table+".json")
			encoded, err := json.MarshalIndent(rows, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", table, err)
			}
			if err := os.WriteFile(path, encoded, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			color.Green("Exported %d rows from %s", len(rows), table)
			results = append(results, tableResult{table: table, rows: len(rows)})
		}

		summary := tablewriter.NewWriter(os.Stdout)
		summary.SetHeader([]string{"Table", "Rows"})
		for _, r := range results {
			summary.Append([]string{r.table, fmt.Sprintf("%d", r.rows)})
		}
		summary.Render()

		fmt.Printf("Snapshot written to %s\n", dir)
		return nil
	},
}

// fetchAllRows drains one table page by page, in order.
func fetchAllRows(ctx context.Context, snapshots store.SnapshotStore, table string) ([]json.RawMessage, error) {
	var rows []json.RawMessage
	offset := 0
	for {
		page, err := snapshots.FetchRows(ctx, table, offset, exportPageSize)
		if err != nil {
			return nil, err
		}
		rows = append(rows, page...)
		if len(page) < exportPageSize {
			return rows, nil
		}
		offset += exportPageSize
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportDir, "dir", "snapshots", "Base directory snapshots are written under")
}
