package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/tablr/internal/cli"
	"github.com/inovacc/tablr/internal/config"
	"github.com/inovacc/tablr/internal/model"
	"github.com/spf13/cobra"
)

var (
	configureShow  bool
	configureReset bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Edit preferences interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath := flagConfig
		if cfgPath == "" {
			cfgPath = config.DefaultPath()
		}

		if configureShow {
			printConfig(appCfg)

			return nil
		}

		if configureReset {
			if err := config.Save(cfgPath, model.DefaultConfig()); err != nil {
				return err
			}

			fmt.Println("Configuration reset to defaults.")

			return nil
		}

		m := cli.NewConfigureModel(cfgPath, appCfg)

		p := tea.NewProgram(m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		configModel := finalModel.(cli.ConfigureModel)
		if configModel.Err != nil {
			return configModel.Err
		}

		if configModel.Saved {
			fmt.Println("Configuration saved.")
		}

		return nil
	},
}

func printConfig(cfg model.Config) {
	fmt.Printf("theme:      %s\n", cfg.Theme)
	fmt.Printf("page_size:  %d\n", cfg.PageSize)
	fmt.Printf("store_path: %s\n", cfg.StorePath)
}

func init() {
	configureCmd.Flags().BoolVarP(&configureShow, "show", "s", false, "show current configuration")
	configureCmd.Flags().BoolVarP(&configureReset, "reset", "r", false, "reset configuration to defaults")

	rootCmd.AddCommand(configureCmd)
}
