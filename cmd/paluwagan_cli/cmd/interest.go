package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newAccrueInterestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accrue-interest",
		Short: "Add one month of interest to every approved loan that is due",
		Long: `Runs the monthly interest sweep once. Loans whose last accrual is under 30
days old are skipped, so running it twice in a row only charges once.

Example:
  paluwagan accrue-interest`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			result, err := a.services.Interest.ApplyMonthlyInterest(cmd.Context())
			if err != nil {
				return fmt.Errorf("interest sweep failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processed: %d\n", result.Processed)
			fmt.Fprintf(out, "Updated:   %d\n", result.Updated)
			fmt.Fprintf(out, "Skipped:   %d\n", result.Skipped)
			for _, f := range result.Failures {
				fmt.Fprintf(out, "Failed:    %s (%s)\n", f.TransactionID, f.Error)
			}

			if !result.Success() {
				return fmt.Errorf("interest sweep finished with %d failures", len(result.Failures))
			}
			slog.Info("Interest sweep completed", slog.Int("updated", result.Updated))
			return nil
		}),
	}
}
