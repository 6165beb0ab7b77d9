package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendtrack-dev/spendtrack/internal/config"
	"github.com/spendtrack-dev/spendtrack/internal/exporter"
)

func newExportCommand(open openFunc) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all transactions to a re-importable CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := open()
			if err != nil {
				return err
			}
			defer closeStore()

			path := output
			if path == "" {
				settings, err := config.LoadSettings()
				if err != nil {
					return err
				}
				path = filepath.Join(settings.Export.Dir, exporter.Filename(time.Now()))
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if err := svc.Export(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", len(svc.Transactions()), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: exported-transactions-<date>.csv)")
	return cmd
}
