package cmd

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/tablr/internal/application"
	"github.com/inovacc/tablr/internal/cli"
	"github.com/inovacc/tablr/internal/config"
	"github.com/inovacc/tablr/internal/database"
	"github.com/inovacc/tablr/internal/logging"
	"github.com/inovacc/tablr/internal/model"
	"github.com/inovacc/tablr/internal/state"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagConfig  string
	flagStore   string

	appCfg   model.Config
	appDB    database.Store
	appState *state.AppState
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "An interactive data table manager",
	Long: `Tablr manages a table of records in your terminal: search, sort,
paginate, edit rows inline, show/hide/reorder columns and exchange data
as CSV. Everything is kept in a local snapshot database.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupEnv,
	PersistentPostRunE: teardownEnv,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTable()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "preferences file (default in app directory)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "snapshot database path (default in app directory)")
}

func setupEnv(cmd *cobra.Command, args []string) error {
	logging.Setup(flagVerbose)

	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	var err error

	appCfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}

	storePath := flagStore
	if storePath == "" {
		storePath = appCfg.StorePath
	}

	if storePath == "" {
		storePath = database.DefaultPath()
	}

	appDB, err = database.Open(storePath)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}

	snap, err := appDB.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if snap == nil {
		slog.Debug("no snapshot found, seeding built-in dataset")

		appState = state.Seeded()

		if err := appDB.SaveSnapshot(appState.Snapshot()); err != nil {
			return fmt.Errorf("save seed snapshot: %w", err)
		}
	} else {
		slog.Debug("snapshot loaded", "uid", snap.UID, "records", len(snap.Records))

		appState = state.FromSnapshot(snap)
	}

	return nil
}

func teardownEnv(cmd *cobra.Command, args []string) error {
	if appDB != nil {
		return appDB.Close()
	}

	return nil
}

func runTable() error {
	m := cli.NewTableModel(appState, appDB, appCfg)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// persist saves the current state; non-interactive commands call it
// after mutating.
func persist() error {
	if err := appDB.SaveSnapshot(appState.Snapshot()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}
