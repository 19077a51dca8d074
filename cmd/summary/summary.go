// Package summary prints the monthly budget summary
package summary

import (
	"strings"

	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/report"
	"fjacquet/finbot/internal/validation"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the monthly summary",
	Long: `Show the current month's spending against the budget: total spent, remaining
budget, top 3 categories and the discipline streak.`,
	Args: cobra.NoArgs,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format ("+strings.Join(report.Formats(), ", ")+")")
}

func summaryFunc(cmd *cobra.Command, _ []string) error {
	if err := validation.IsValidOutputFormat(format); err != nil {
		return apperror.NewValidationError("format", format, err)
	}

	app := root.App()
	sess, err := root.Session(cmd.Context())
	if err != nil {
		return err
	}

	r, err := app.GetLedger().Report(cmd.Context(), sess)
	if err != nil {
		return err
	}

	out, err := app.GetReportGenerator().Render(r, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
