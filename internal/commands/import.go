package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendtrack-dev/spendtrack/internal/importer"
)

func newImportCommand(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a bank-exported CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := open()
			if err != nil {
				return err
			}
			defer closeStore()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening file: %w", err)
			}
			defer f.Close()

			sum, err := svc.ImportFile(f, filepath.Base(args[0]))
			var invalid *importer.InvalidAmountError
			if errors.As(err, &invalid) {
				return fmt.Errorf("import aborted, nothing saved: %w", invalid)
			}
			if errors.Is(err, importer.ErrEmptyFile) {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions", sum.Appended)
			if sum.Reexport {
				fmt.Fprintf(cmd.OutOrStdout(), " (re-export, categories kept verbatim)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			if sum.FlaggedForReview > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d transactions need review (run: spendtrack review list)\n", sum.FlaggedForReview)
			}
			return nil
		},
	}
}
