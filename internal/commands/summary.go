package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newSummaryCommand(open openFunc) *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a month's income, spending, and per-category totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := open()
			if err != nil {
				return err
			}
			defer closeStore()

			m, err := resolveMonth(month)
			if err != nil {
				return err
			}

			totals := svc.MonthlyTotals(m)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", m)
			fmt.Fprintf(cmd.OutOrStdout(), "  Income:  %s\n", totals.Income.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "  Expense: %s\n", totals.Expense.StringFixed(2))

			names := make([]string, 0, len(totals.ByCategory))
			for name := range totals.ByCategory {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %s\n", name, totals.ByCategory[name].StringFixed(2))
			}

			cmp := svc.MonthOverMonth(m)
			if !cmp.Previous.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "  Net change vs previous month: %s\n", cmp.Change.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default: current month)")
	return cmd
}
