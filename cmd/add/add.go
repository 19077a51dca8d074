// Package add records expenses
package add

import (
	"fmt"
	"strings"

	"fjacquet/finbot/cmd/common"
	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/assistant"
	"fjacquet/finbot/internal/dateutils"
	"fjacquet/finbot/internal/logging"

	"github.com/spf13/cobra"
)

var (
	amount string
	date   string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Record an expense",
	Long: `Record an expense. The category is chosen from the description by keyword
and the assistant reacts to the updated monthly figures.`,
	Args: cobra.MinimumNArgs(1),
	RunE: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Expense amount")
	Cmd.Flags().StringVar(&date, "date", "", "Expense date (default: today)")
	_ = Cmd.MarkFlagRequired("amount")
}

func addFunc(cmd *cobra.Command, args []string) error {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return apperror.NewValidationError("description", "", fmt.Errorf("description is required"))
	}

	value, err := common.ParseAmountFlag("amount", amount)
	if err != nil {
		return err
	}

	app := root.App()
	sess, err := root.Session(cmd.Context())
	if err != nil {
		return err
	}

	day := app.GetLedger().Now()
	if date != "" {
		day, err = dateutils.ParseDate(date)
		if err != nil {
			return apperror.NewValidationError("date", date, err)
		}
	}

	tx, report, err := app.GetLedger().AddTransactionOn(cmd.Context(), sess, day, description, value)
	if err != nil {
		return err
	}
	root.Logger().Debug("Expense recorded",
		logging.F(logging.FieldCategory, tx.Category),
		logging.F(logging.FieldAmount, tx.Amount.String()))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Added %s on %s as %s\n", app.GetReportGenerator().Amount(tx.Amount), tx.DateString(), tx.Category)
	common.PrintFeedback(out, assistant.Advise(report, sess.Tone()))
	return nil
}
