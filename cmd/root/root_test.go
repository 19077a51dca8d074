package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/internal/apperror"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var initOnce sync.Once

func initRoot() {
	initOnce.Do(root.Init)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func resetFlags() {
	root.Flags = root.GlobalFlags{}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "finbot", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "personal finance tracker")
	assert.Contains(t, root.Cmd.Long, "monthly budget")
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	initRoot()

	userFlag := root.Cmd.PersistentFlags().Lookup("user")
	require.NotNil(t, userFlag)
	assert.Equal(t, "u", userFlag.Shorthand)
	assert.Equal(t, "", userFlag.DefValue)

	for _, name := range []string{"db", "config", "log-level"} {
		assert.NotNil(t, root.Cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestUsername_PrefersFlag(t *testing.T) {
	defer resetFlags()

	root.Flags.User = "  asha  "
	assert.Equal(t, "asha", root.Username())

	root.Flags.User = ""
	assert.Equal(t, "", root.Username(), "no container, no config fallback")
}

func TestLogger_WithoutContainer(t *testing.T) {
	assert.NotNil(t, root.Logger())
	assert.Nil(t, root.App())
}

func describe(cmd *cobra.Command, _ []string) error {
	cmd.Printf("db=%s user=%s\n", root.App().GetConfig().Database.Path, root.Username())
	return nil
}

func login(cmd *cobra.Command, args []string) error {
	_ = describe(cmd, args)
	_, err := root.Session(cmd.Context())
	return err
}

// runWithHooks runs a throwaway subcommand through the root pre and post run hooks.
func runWithHooks(t *testing.T, run func(*cobra.Command, []string) error, args ...string) (string, error) {
	t.Helper()
	initRoot()
	defer resetFlags()
	defer func() { require.NoError(t, root.Close()) }()

	var out bytes.Buffer
	cmd := &cobra.Command{Use: "hooked", RunE: run}
	root.Cmd.AddCommand(cmd)
	defer root.Cmd.RemoveCommand(cmd)

	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&out)
	root.Cmd.SetArgs(append([]string{"hooked"}, args...))
	err := root.Cmd.Execute()
	return out.String(), err
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	cfg := writeConfig(t, "database:\n  path: ignored.db\nuser:\n  name: fromconfig\n")

	out, err := runWithHooks(t, describe, "--config", cfg, "--db", ":memory:", "--user", "asha")
	require.NoError(t, err)
	assert.Contains(t, out, "db=:memory: user=asha")
	assert.Nil(t, root.App(), "container is closed after the command")
}

func TestSetup_LogsToCommandStderr(t *testing.T) {
	cfg := writeConfig(t, "log:\n  level: error\n")

	out, err := runWithHooks(t, describe, "--config", cfg, "--db", ":memory:", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "Container initialized successfully")
}

func TestSetup_UserFromConfig(t *testing.T) {
	cfg := writeConfig(t, "user:\n  name: fromconfig\n")

	out, err := runWithHooks(t, login, "--config", cfg, "--db", ":memory:")
	assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	assert.Contains(t, out, "user=fromconfig")
}

func TestSession_RequiresUser(t *testing.T) {
	cfg := writeConfig(t, "log:\n  level: error\n")

	_, err := runWithHooks(t, login, "--config", cfg, "--db", ":memory:")
	assert.ErrorIs(t, err, apperror.ErrNoSession)
}

func TestSetup_MissingConfigFile(t *testing.T) {
	_, err := runWithHooks(t, describe, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
