// Package settings changes a user's tone and budget
package settings

import (
	"fmt"

	"fjacquet/finbot/cmd/common"
	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/internal/models"

	"github.com/spf13/cobra"
)

var (
	tone       string
	budget     string
	dailyLimit string
)

// Cmd represents the settings command
var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "Change tone, monthly budget or daily limit",
	Long: `Change the assistant tone, the monthly budget or the daily limit. New values
replace the old ones and apply to every later report, including past days.
Without flags the current settings are printed.`,
	Args: cobra.NoArgs,
	RunE: settingsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&tone, "tone", "t", "", "Assistant tone ("+common.ToneNames()+")")
	Cmd.Flags().StringVarP(&budget, "budget", "b", "", "Monthly budget")
	Cmd.Flags().StringVarP(&dailyLimit, "daily-limit", "d", "", "Daily spending limit")
}

func settingsFunc(cmd *cobra.Command, _ []string) error {
	app := root.App()
	sess, err := root.Session(cmd.Context())
	if err != nil {
		return err
	}

	var update models.SettingsUpdate
	if cmd.Flags().Changed("tone") {
		parsed, err := common.ParseToneFlag(tone)
		if err != nil {
			return err
		}
		update.Tone = &parsed
	}
	if update.MonthlyBudget, err = common.OptionalAmountFlag(cmd, "budget", budget); err != nil {
		return err
	}
	if update.DailyLimit, err = common.OptionalAmountFlag(cmd, "daily-limit", dailyLimit); err != nil {
		return err
	}

	if !update.IsEmpty() {
		if sess, err = app.GetLedger().UpdateSettings(cmd.Context(), sess, update); err != nil {
			return err
		}
	}

	reports := app.GetReportGenerator()
	fmt.Fprintf(cmd.OutOrStdout(), "Tone: %s\nMonthly budget: %s\nDaily limit: %s\n",
		sess.Tone(),
		reports.Amount(sess.User.Budget.MonthlyBudget),
		reports.Amount(sess.User.Budget.EffectiveDailyLimit()))
	return nil
}
