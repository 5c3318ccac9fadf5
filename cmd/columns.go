package cmd

import (
	"errors"
	"fmt"

	"github.com/inovacc/tablr/internal/model"
	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the column registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range appState.Columns() {
			mark := " "
			if c.Visible {
				mark = "x"
			}

			fmt.Printf("[%s] %-16s key=%s\n", mark, c.Label, c.Key)
		}

		return nil
	},
}

var columnsAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Append a new column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]

		key := model.KeyFromLabel(label)
		if key == "" {
			return errors.New("invalid column name")
		}

		if appState.HasColumn(key) {
			return errors.New("column already exists")
		}

		appState.AppendColumn(model.Column{Key: key, Label: label, Visible: true, Sortable: true})

		updates := make(map[model.RecordID]model.Fields, len(appState.Records()))
		for _, r := range appState.Records() {
			updates[r.ID] = model.Fields{key: model.Text("")}
		}

		appState.UpdateMany(updates)

		if err := persist(); err != nil {
			return err
		}

		fmt.Printf("Added column %s (key=%s)\n", label, key)

		return nil
	},
}

var columnsShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Make a column visible",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVisibility(model.ColumnKey(args[0]), true)
	},
}

var columnsHideCmd = &cobra.Command{
	Use:   "hide <key>",
	Short: "Hide a column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setVisibility(model.ColumnKey(args[0]), false)
	},
}

var columnsMoveCmd = &cobra.Command{
	Use:   "move <key> <target-key>",
	Short: "Move a column to another column's position",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dragged, target := model.ColumnKey(args[0]), model.ColumnKey(args[1])
		if !appState.HasColumn(dragged) || !appState.HasColumn(target) {
			return errors.New("unknown column key")
		}

		appState.ReorderColumns(dragged, target)

		return persist()
	},
}

func setVisibility(key model.ColumnKey, visible bool) error {
	if !appState.HasColumn(key) {
		return errors.New("unknown column key")
	}

	appState.ToggleVisibility(key, visible)

	return persist()
}

func init() {
	columnsCmd.AddCommand(columnsAddCmd, columnsShowCmd, columnsHideCmd, columnsMoveCmd)
	rootCmd.AddCommand(columnsCmd)
}
