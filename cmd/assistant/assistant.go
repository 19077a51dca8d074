// Package assistant prints the budget assistant's advice
package assistant

import (
	"fmt"

	"fjacquet/finbot/cmd/common"
	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/internal/assistant"

	"github.com/spf13/cobra"
)

// Cmd represents the assistant command
var Cmd = &cobra.Command{
	Use:   "assistant",
	Short: "Get advice from the budget assistant",
	Long: `Greet the user and comment on the month's spending in the user's tone,
naming the top category, a suggestion and any streak badge.`,
	Args: cobra.NoArgs,
	RunE: assistantFunc,
}

func assistantFunc(cmd *cobra.Command, _ []string) error {
	app := root.App()
	sess, err := root.Session(cmd.Context())
	if err != nil {
		return err
	}

	r, err := app.GetLedger().Report(cmd.Context(), sess)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, assistant.Greeting(sess.User.Username, sess.Tone(), app.GetLedger().Now()))
	common.PrintFeedback(out, assistant.Advise(r, sess.Tone()))
	return nil
}
