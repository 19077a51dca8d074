// Package version prints the build and database schema versions
package version

import (
	"fmt"

	"fjacquet/finbot/cmd/root"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X fjacquet/finbot/cmd/version.Version=..."
var Version = "dev"

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Show the finbot version and database schema",
	Long:  `Show the finbot build version and the migration version applied to the database.`,
	Args:  cobra.NoArgs,
	RunE:  versionFunc,
}

func versionFunc(cmd *cobra.Command, _ []string) error {
	app := root.App()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "finbot %s\n", Version)

	version, ok, err := app.SchemaVersion()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Database: in-memory")
		return nil
	}
	fmt.Fprintf(out, "Database: %s (schema version %d)\n", app.GetConfig().Database.Path, version)
	return nil
}
