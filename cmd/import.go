package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/inovacc/tablr/internal/csvio"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Append records from a CSV file",
	Long: `Import parses a CSV file with a header row. Headers are matched to
visible column labels case-insensitively; numeric columns are parsed as
integers (0 on failure), unmatched columns stay absent. Records are
appended, never replaced. A parse error aborts the whole import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		records, err := csvio.Import(f, appState.Records(), appState.Columns(), appState.NextID)
		if err != nil {
			return fmt.Errorf("import aborted: %w", err)
		}

		appState.InsertRecords(records)

		if err := persist(); err != nil {
			return err
		}

		slog.Debug("import complete", "file", args[0], "records", len(records))
		fmt.Printf("Imported %d records from %s\n", len(records), args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
