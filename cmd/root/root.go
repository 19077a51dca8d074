// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/finbot/internal/apperror"
	"fjacquet/finbot/internal/config"
	"fjacquet/finbot/internal/container"
	"fjacquet/finbot/internal/ledger"
	"fjacquet/finbot/internal/logging"

	"github.com/spf13/cobra"
)

// GlobalFlags represents the flags shared by every command
type GlobalFlags struct {
	User     string
	Database string
	Config   string
	LogLevel string
}

var (
	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finbot",
		Short: "A personal finance tracker with budget tracking and a rule-based assistant.",
		Long: `finbot records your expenses, files them into spending categories by keyword,
tracks them against a monthly budget and a daily limit, and gives advice in the
tone you choose (serious, friendly or funny).`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}

	// Flags holds the values of the persistent flags
	Flags = GlobalFlags{}

	app *container.Container

	// NewContainer builds the dependency container; tests may replace it.
	NewContainer = container.NewContainer
)

// Init initializes the persistent flags of the root command
func Init() {
	Cmd.PersistentFlags().StringVarP(&Flags.User, "user", "u", "", "Username to act as (default: user.name from config)")
	Cmd.PersistentFlags().StringVar(&Flags.Database, "db", "", "SQLite database path, or :memory: (default: database.path from config)")
	Cmd.PersistentFlags().StringVar(&Flags.Config, "config", "", "Config file (default: $HOME/.finbot/config.yaml)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(Flags.Config)
	if err != nil {
		return err
	}
	if Flags.Database != "" {
		cfg.Database.Path = Flags.Database
	}
	if Flags.LogLevel != "" {
		cfg.Log.Level = Flags.LogLevel
	}

	if err := Close(); err != nil {
		return err
	}
	logger := logging.NewLogrusAdapterWithOutput(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	c, err := NewContainer(cfg, container.WithLogger(logger))
	if err != nil {
		return err
	}
	app = c
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	return Close()
}

// Close releases the container of the last command. Cobra skips the post-run hook
// when a command fails, so main calls it after Execute as well.
func Close() error {
	if app == nil {
		return nil
	}
	err := app.Close()
	app = nil
	return err
}

// App returns the container built for the running command.
func App() *container.Container {
	return app
}

// Logger returns the running command's logger.
func Logger() logging.Logger {
	if app == nil {
		return logging.NewNopLogger()
	}
	return app.GetLogger()
}

// Username resolves the acting user from --user or the configuration.
func Username() string {
	if name := strings.TrimSpace(Flags.User); name != "" {
		return name
	}
	if app != nil {
		return strings.TrimSpace(app.GetConfig().User.Name)
	}
	return ""
}

// Session logs in the acting user.
func Session(ctx context.Context) (*ledger.Session, error) {
	username := Username()
	if username == "" {
		return nil, fmt.Errorf("%w: pass --user or set user.name", apperror.ErrNoSession)
	}
	return app.GetLedger().Login(ctx, username)
}
