// Package register handles user registration
package register

import (
	"fmt"

	"fjacquet/finbot/cmd/common"
	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/internal/assistant"
	"fjacquet/finbot/internal/models"

	"github.com/spf13/cobra"
)

var (
	tone       string
	budget     string
	dailyLimit string
)

// Cmd represents the register command
var Cmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user",
	Long: `Register a new user with a preferred assistant tone and a monthly budget.
The daily limit defaults to one thirtieth of the monthly budget.`,
	Args: cobra.NoArgs,
	RunE: registerFunc,
}

func init() {
	Cmd.Flags().StringVarP(&tone, "tone", "t", "", "Assistant tone ("+common.ToneNames()+")")
	Cmd.Flags().StringVarP(&budget, "budget", "b", "", "Monthly budget (default: defaults.monthly_budget from config)")
	Cmd.Flags().StringVarP(&dailyLimit, "daily-limit", "d", "", "Daily spending limit (optional)")
}

func registerFunc(cmd *cobra.Command, _ []string) error {
	app := root.App()
	cfg := app.GetConfig()

	userTone := cfg.DefaultTone()
	if tone != "" {
		parsed, err := common.ParseToneFlag(tone)
		if err != nil {
			return err
		}
		userTone = parsed
	}

	monthly := cfg.DefaultMonthlyBudget()
	if cmd.Flags().Changed("budget") {
		parsed, err := common.ParseAmountFlag("budget", budget)
		if err != nil {
			return err
		}
		monthly = parsed
	}

	limit, err := common.OptionalAmountFlag(cmd, "daily-limit", dailyLimit)
	if err != nil {
		return err
	}

	user, err := app.GetLedger().Register(cmd.Context(), root.Username(), userTone, models.BudgetConfig{
		MonthlyBudget: monthly,
		DailyLimit:    limit,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Registered %s (tone: %s, monthly budget: %s, daily limit: %s)\n",
		user.Username, user.Tone,
		app.GetReportGenerator().Amount(user.Budget.MonthlyBudget),
		app.GetReportGenerator().Amount(user.Budget.EffectiveDailyLimit()))
	fmt.Fprintln(out, assistant.Welcome())
	return nil
}
