package main

import (
	"fmt"
	"os"

	"fjacquet/finbot/cmd/add"
	"fjacquet/finbot/cmd/assistant"
	"fjacquet/finbot/cmd/categorize"
	"fjacquet/finbot/cmd/chart"
	"fjacquet/finbot/cmd/export"
	"fjacquet/finbot/cmd/list"
	"fjacquet/finbot/cmd/register"
	"fjacquet/finbot/cmd/root"
	"fjacquet/finbot/cmd/settings"
	"fjacquet/finbot/cmd/summary"
	"fjacquet/finbot/cmd/version"
	"fjacquet/finbot/internal/config"
)

func init() {
	// .env must be loaded before viper reads FINBOT_* variables
	config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(register.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(assistant.Cmd)
	root.Cmd.AddCommand(chart.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(settings.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(version.Cmd)
}

func run(args []string) error {
	root.Cmd.SetArgs(args)
	err := root.Cmd.Execute()
	if closeErr := root.Close(); err == nil {
		err = closeErr
	}
	return err
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
