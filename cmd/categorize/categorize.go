// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"
	"strings"

	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/categorizer"

	"github.com/spf13/cobra"
)

var dumpRules bool

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize [description]",
	Short: "Categorize a description without recording it",
	Long: `Show which category a description would be filed under by keyword matching.
With --dump-rules the active keyword rules are written to the categories file.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().BoolVar(&dumpRules, "dump-rules", false, "Write the active keyword rules to the categories file")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	app := root.App()
	out := cmd.OutOrStdout()

	if dumpRules {
		path, err := app.GetStore().SaveCategories(categorizer.RulesToConfig(app.GetCategorizer().Rules()))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s rules to %s\n", app.GetCategorizer().Source(), path)
		return nil
	}

	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return apperror.NewValidationError("description", "", fmt.Errorf("description is required"))
	}

	fmt.Fprintln(out, app.GetCategorizer().Categorize(description))
	return nil
}
