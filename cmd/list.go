package cmd

import (
	"fmt"
	"strings"

	"github.com/inovacc/tablr/internal/model"
	"github.com/inovacc/tablr/internal/view"
	"github.com/spf13/cobra"
)

var (
	listSearch string
	listSort   string
	listDesc   bool
	listPage   int
	listAll    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the current table page to stdout",
	Long: `List derives the same view the interactive table shows — filter,
sort, paginate over the visible columns — and writes it as plain text,
making the data scriptable. Flags override the saved selection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui := appState.UI()

		search := ui.SearchTerm
		if cmd.Flags().Changed("search") {
			search = listSearch
		}

		sortSpec := ui.Sort
		if listSort != "" {
			dir := model.Ascending
			if listDesc {
				dir = model.Descending
			}

			sortSpec = &model.SortSpec{Key: model.ColumnKey(listSort), Direction: dir}
		}

		page := ui.Page
		if listPage > 0 {
			page = listPage
		}

		pageSize := appCfg.PageSize
		if listAll {
			pageSize = len(appState.Records()) + 1
			page = 1
		}

		res := view.Derive(appState.Records(), appState.Columns(), view.Query{
			Search:   search,
			Sort:     sortSpec,
			Page:     page,
			PageSize: pageSize,
		})

		printPage(res, appState.Columns())

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "filter rows by substring over visible columns")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort by column key")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().IntVar(&listPage, "page", 0, "page number (1-based)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "print every matching row")

	rootCmd.AddCommand(listCmd)
}

func printPage(res view.Result, columns []model.Column) {
	visible := view.VisibleColumns(columns)
	rows := view.Rows(res.Records, visible, nil)

	widths := make([]int, len(visible))
	for i, c := range visible {
		widths[i] = len(c.Label)
	}

	for _, row := range rows {
		for i, cell := range row.Cells {
			if len(cell.Text) > widths[i] {
				widths[i] = len(cell.Text)
			}
		}
	}

	var b strings.Builder
	for i, c := range visible {
		fmt.Fprintf(&b, "%-*s  ", widths[i], c.Label)
	}

	fmt.Println(strings.TrimRight(b.String(), " "))

	for _, row := range rows {
		b.Reset()

		for i, cell := range row.Cells {
			fmt.Fprintf(&b, "%-*s  ", widths[i], cell.Text)
		}

		fmt.Println(strings.TrimRight(b.String(), " "))
	}

	fmt.Println(view.RangeText(res))
}
