// Package list prints recorded expenses
package list

import (
	"fmt"

	"fjacquet/finbot/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	Long:  `List every recorded expense, newest first, as date | description | amount | category.`,
	Args:  cobra.NoArgs,
	RunE:  listFunc,
}

func listFunc(cmd *cobra.Command, _ []string) error {
	app := root.App()
	sess, err := root.Session(cmd.Context())
	if err != nil {
		return err
	}

	transactions, err := app.GetLedger().Transactions(cmd.Context(), sess)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(transactions) == 0 {
		fmt.Fprintln(out, "No transactions yet.")
		return nil
	}
	for _, tx := range transactions {
		fmt.Fprintf(out, "%s | %s | %s | %s\n",
			tx.DateString(), tx.Description, app.GetReportGenerator().Amount(tx.Amount), tx.Category)
	}
	return nil
}
