// Package chart prints the category breakdown of the month
package chart

import (
	"errors"
	"fmt"

	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/internal/apperror"

	"github.com/spf13/cobra"
)

// Cmd represents the chart command
var Cmd = &cobra.Command{
	Use:   "chart",
	Short: "Show this month's spending by category",
	Long:  `Show the share of this month's transactions in each category as a bar chart.`,
	Args:  cobra.NoArgs,
	RunE:  chartFunc,
}

func chartFunc(cmd *cobra.Command, _ []string) error {
	app := root.App()
	sess, err := root.Session(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	history, err := app.GetLedger().Transactions(cmd.Context(), sess)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(out, "No data to show.")
		return nil
	}

	shares, err := app.GetLedger().CategoryShares(cmd.Context(), sess)
	if err != nil && !errors.Is(err, apperror.ErrNoTransactions) {
		return err
	}

	fmt.Fprint(out, app.GetReportGenerator().RenderChart(shares))
	return nil
}
