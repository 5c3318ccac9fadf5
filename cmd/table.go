package cmd

import "github.com/spf13/cobra"

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Open the interactive table (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTable()
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
