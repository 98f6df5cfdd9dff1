package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/twconfig/lint"
)

// ErrLintFailed is returned when validation finds error-level findings.
var ErrLintFailed = errors.New("descriptor has errors")

func (a *app) validateCommand() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a descriptor's shape and values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.v.Set("config", args[0])
			}
			d, source, err := a.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			findings := lint.Run(d)
			for _, f := range findings {
				fmt.Fprintf(out, "  %s %s\n", marker(f.Severity), f)
			}

			if lint.HasErrors(findings) || (strict && len(findings) > 0) {
				return fmt.Errorf("%s: %w", source, ErrLintFailed)
			}
			fmt.Fprintf(out, "✓ %s is valid\n", source)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	return cmd
}

func marker(s lint.Severity) string {
	if s == lint.SeverityError {
		return "✗"
	}
	return "!"
}
