package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newArchiveCmd(a *app) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive every transaction of a fiscal year",
		Long: `Flags all transactions of the year as archived. Archived records keep
appearing in reports but can no longer be reviewed.

Example:
  paluwagan archive --year 2024`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			result, err := a.services.FiscalYear.ArchiveFiscalYear(cmd.Context(), year, a.actorID)
			if err != nil {
				return fmt.Errorf("archive failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived %d transactions for %d\n", result.Count, result.Year)
			if result.IsCurrentYear {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning: this is the current fiscal year")
			}
			return nil
		}),
	}
	cmd.Flags().IntVar(&year, "year", 0, "fiscal year to archive")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func newRunningBalanceCmd(a *app) *cobra.Command {
	var (
		year int
		desc bool
	)
	cmd := &cobra.Command{
		Use:   "running-balance",
		Short: "Print the cash balance after each transaction of a year",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			report, err := a.services.Reporting.RunningBalance(cmd.Context(), year, desc)
			if err != nil {
				return fmt.Errorf("running balance failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fiscal year %d, starting balance %s\n\n", report.Year, report.StartingBalance.StringFixed(2))
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CREATED\tTYPE\tSTATUS\tID\tEFFECT\tBALANCE")
			for _, e := range report.Entries {
				txn := e.Transaction
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.CreatedAt.Format("2006-01-02 15:04"),
					txn.Type,
					txn.Status,
					txn.TransactionID,
					txn.CashEffect().StringFixed(2),
					e.RunningBalance.StringFixed(2),
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nEnding balance %s\n", report.EndingBalance.StringFixed(2))
			return nil
		}),
	}
	cmd.Flags().IntVar(&year, "year", 0, "fiscal year to replay")
	cmd.Flags().BoolVar(&desc, "desc", false, "list newest entries first")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func newStartingBalanceCmd(a *app) *cobra.Command {
	parent := &cobra.Command{
		Use:   "starting-balance",
		Short: "Show or set a fiscal year's opening cash balance",
	}

	var getYear int
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the starting balance, creating a zero record on first use",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			rec, err := a.services.FiscalYear.GetStartingBalance(cmd.Context(), getYear)
			if err != nil {
				return fmt.Errorf("get starting balance failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", rec.Year, rec.StartingBalance.StringFixed(2))
			return nil
		}),
	}
	getCmd.Flags().IntVar(&getYear, "year", 0, "fiscal year")
	_ = getCmd.MarkFlagRequired("year")

	var (
		setYear int
		amount  string
	)
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Record the starting balance of a fiscal year",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			rec, err := a.services.FiscalYear.SetStartingBalance(cmd.Context(), setYear, value, a.actorID)
			if err != nil {
				return fmt.Errorf("set starting balance failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", rec.Year, rec.StartingBalance.StringFixed(2))
			return nil
		}),
	}
	setCmd.Flags().IntVar(&setYear, "year", 0, "fiscal year")
	setCmd.Flags().StringVar(&amount, "amount", "", "opening balance, e.g. 15000.00")
	_ = setCmd.MarkFlagRequired("year")
	_ = setCmd.MarkFlagRequired("amount")

	parent.AddCommand(getCmd, setCmd)
	return parent
}
