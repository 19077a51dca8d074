// Package export writes recorded expenses to CSV
package export

import (
	"fmt"

	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/export"
	"fjacquet/finbot/internal/validation"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses to CSV",
	Long:  `Export every recorded expense to a CSV file with Date, Description, Amount and Category columns.`,
	Args:  cobra.NoArgs,
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV file (default: <user>_transactions.csv)")
}

// outputPath returns --output, or the per-user default file name.
func outputPath(username string) string {
	if output != "" {
		return output
	}
	return export.DefaultFileName(username)
}

func exportFunc(cmd *cobra.Command, _ []string) error {
	path := outputPath(root.Username())
	if err := validation.IsValidOutputPath(path); err != nil {
		return apperror.NewValidationError("output", path, err)
	}

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
		fmt.Fprintln(out, "No transactions to export.")
		return nil
	}
	if err := app.GetExporter().WriteFile(path, transactions); err != nil {
		return err
	}

	fmt.Fprintf(out, "Exported %d transactions to %s\n", len(transactions), path)
	return nil
}
