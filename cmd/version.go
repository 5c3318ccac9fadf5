package cmd

import (
	"fmt"

	"github.com/inovacc/tablr/internal/application"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", application.AppName, Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
