package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newBudgetCommand(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category budgets and monthly income",
	}
	cmd.AddCommand(newBudgetShowCommand(open))
	cmd.AddCommand(newBudgetSetCommand(open))
	cmd.AddCommand(newBudgetIncomeCommand(open))
	return cmd
}

func newBudgetShowCommand(open openFunc) *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show each category's budget against the month's spending",
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

			if income := svc.MonthlyIncome(); income != "" {
				total := decimal.Zero
				for _, limit := range svc.Budgets() {
					total = total.Add(limit)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Monthly income: %s (budgeted: %s)\n", income, total.StringFixed(2))
			}

			for _, line := range svc.BudgetOverview(m) {
				status := fmt.Sprintf("%s left", line.Remaining.StringFixed(2))
				if line.Over {
					status = fmt.Sprintf("%s over", line.Spent.Sub(line.Limit).StringFixed(2))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s / %s  (%s)\n",
					line.Category, line.Spent.StringFixed(2), line.Limit.StringFixed(2), status)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "month 1-12 (default: current month)")
	return cmd
}

func newBudgetSetCommand(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set a category's monthly limit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := open()
			if err != nil {
				return err
			}
			defer closeStore()

			limit, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			if err := svc.SetBudget(args[0], limit); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s set to %s\n", args[0], limit.StringFixed(2))
			return nil
		},
	}
}

func newBudgetIncomeCommand(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "income <amount>",
		Short: "Declare the monthly income budgets are tracked against",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := open()
			if err != nil {
				return err
			}
			defer closeStore()

			if err := svc.SetMonthlyIncome(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Monthly income set to %s\n", args[0])
			return nil
		},
	}
}

func resolveMonth(month int) (time.Month, error) {
	if month == 0 {
		return time.Now().Month(), nil
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month must be 1-12, got %d", month)
	}
	return time.Month(month), nil
}
