// Package commands implements the spendtrack CLI.
package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spendtrack-dev/spendtrack/internal/buildinfo"
	"github.com/spendtrack-dev/spendtrack/internal/config"
	"github.com/spendtrack-dev/spendtrack/internal/logger"
	"github.com/spendtrack-dev/spendtrack/internal/store"
	"github.com/spendtrack-dev/spendtrack/internal/tracker"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "spendtrack",
		Short:   "Local personal spending tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "path to spendtrack.yaml")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable info logging")

	open := func() (*tracker.Service, func(), error) {
		return openService(configPath, verbose)
	}

	rootCmd.AddCommand(newInitCommand(&configPath))
	rootCmd.AddCommand(newImportCommand(open))
	rootCmd.AddCommand(newReviewCommand(open))
	rootCmd.AddCommand(newExportCommand(open))
	rootCmd.AddCommand(newBudgetCommand(open))
	rootCmd.AddCommand(newSummaryCommand(open))

	return rootCmd
}

// openFunc builds a tracker service; the returned func releases the store.
type openFunc func() (*tracker.Service, func(), error)

func openService(configPath string, verbose bool) (*tracker.Service, func(), error) {
	log := logger.New().Level(zerolog.WarnLevel)
	if verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(settings.Database.Path, log)
	if err != nil {
		return nil, nil, err
	}

	svc, err := tracker.NewService(st, cfg.Engine(), cfg.Catalog(), log)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return svc, func() { st.Close() }, nil
}
