package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/tablr/internal/csvio"
	"github.com/inovacc/tablr/internal/model"
	"github.com/inovacc/tablr/internal/view"
	"github.com/spf13/cobra"
)

var (
	exportOut    string
	exportSearch string
	exportSort   string
	exportDesc   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered, sorted table to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ui := appState.UI()

		search := ui.SearchTerm
		if cmd.Flags().Changed("search") {
			search = exportSearch
		}

		sortSpec := ui.Sort
		if exportSort != "" {
			dir := model.Ascending
			if exportDesc {
				dir = model.Descending
			}

			sortSpec = &model.SortSpec{Key: model.ColumnKey(exportSort), Direction: dir}
		}

		records := view.FilterSort(appState.Records(), appState.Columns(), search, sortSpec)

		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		if err := csvio.Export(f, records, appState.Columns()); err != nil {
			return err
		}

		fmt.Printf("Exported %d rows to %s\n", len(records), exportOut)

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", csvio.DefaultFilename, "output file")
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "filter rows before exporting")
	exportCmd.Flags().StringVar(&exportSort, "sort", "", "sort by column key")
	exportCmd.Flags().BoolVar(&exportDesc, "desc", false, "sort descending")

	rootCmd.AddCommand(exportCmd)
}
