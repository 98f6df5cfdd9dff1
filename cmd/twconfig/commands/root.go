// Package commands implements the twconfig CLI.
package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agiangrant/twconfig/descriptor"
	twlog "github.com/agiangrant/twconfig/internal/log"
)

var envReplacer = strings.NewReplacer("-", "_")

// builtinSource names the compiled-in project descriptor in output.
const builtinSource = "built-in project descriptor"

// app carries settings shared by every command. Flags are bound to viper
// so each can also come from a TWCONFIG_* environment variable.
type app struct {
	v       *viper.Viper
	version string
}

// NewRoot builds the command tree.
func NewRoot(version string) *cobra.Command {
	a := &app{v: viper.New(), version: version}

	root := &cobra.Command{
		Use:           "twconfig",
		Short:         "Inspect and export the Tailwind configuration descriptor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			twlog.Configure(twlog.Config{
				Level:   a.v.GetString("log-level"),
				Output:  cmd.ErrOrStderr(),
				Console: !a.v.GetBool("log-json"),
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "descriptor file (default: search twconfig.{toml,yaml,yml,json}, then the built-in descriptor)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "log as JSON instead of console output")

	a.v.SetEnvPrefix("TWCONFIG")
	a.v.AutomaticEnv()
	for _, name := range []string{"config", "log-level", "log-json"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}
	a.v.SetEnvKeyReplacer(envReplacer)

	root.AddCommand(
		a.showCommand(),
		a.validateCommand(),
		a.initCommand(),
		a.exportCommand(),
		a.themeCommand(),
		a.watchCommand(),
		a.versionCommand(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	root := NewRoot(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// configPath returns the descriptor file to use, or "" for the built-in one.
func (a *app) configPath() (string, error) {
	if path := a.v.GetString("config"); path != "" {
		return path, nil
	}
	path, err := descriptor.Find(".")
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	return path, err
}

// load returns the selected descriptor and a label describing its source.
func (a *app) load() (*descriptor.Descriptor, string, error) {
	path, err := a.configPath()
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return descriptor.Project(), builtinSource, nil
	}
	d, err := descriptor.Load(path)
	if err != nil {
		return nil, "", err
	}
	return d, path, nil
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "twconfig version %s\n", a.version)
		},
	}
}
