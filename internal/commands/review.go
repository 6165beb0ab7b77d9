package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReviewCommand(open openFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "List and resolve transactions pending review",
	}
	cmd.AddCommand(newReviewListCommand(open))
	cmd.AddCommand(newReviewResolveCommand(open))
	return cmd
}

func newReviewListCommand(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the review queue in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := open()
			if err != nil {
				return err
			}
			defer closeStore()

			queue := svc.PendingReviews()
			if len(queue) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to review")
				return nil
			}
			for _, tx := range queue {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %s\n",
					tx.ID, tx.Date, tx.Amount.StringFixed(2), tx.Description)
			}
			return nil
		},
	}
}

func newReviewResolveCommand(open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <id> <category>",
		Short: "Assign a final category to a queued transaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := open()
			if err != nil {
				return err
			}
			defer closeStore()

			if err := svc.ResolveReview(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resolved %s as %s\n", args[0], args[1])
			return nil
		},
	}
}
