package cmd

import (
	"fmt"

	"github.com/inovacc/tablr/internal/state"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace all data with the built-in seed dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Print("Discard all records and columns and restore the seed data? [y/N]: ")

			var response string
			_, _ = fmt.Scanln(&response)

			if response != "y" && response != "Y" {
				fmt.Println("Cancelled.")

				return nil
			}
		}

		appState = state.Seeded()

		if err := persist(); err != nil {
			return err
		}

		fmt.Println("Reset to seed data.")

		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation prompt")

	rootCmd.AddCommand(resetCmd)
}
