package commands

import (
	"github.com/spf13/cobra"

	"github.com/agiangrant/twconfig/descriptor"
)

func (a *app) showCommand() *cobra.Command {
	var (
		format  string
		project bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the descriptor",
		Long:  "Print the descriptor in TOML, YAML or JSON. Without --config the project file is searched for, falling back to the built-in descriptor.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := descriptor.ParseFormat(format)
			if err != nil {
				return err
			}

			d := descriptor.Project()
			if !project {
				if d, _, err = a.load(); err != nil {
					return err
				}
			}

			data, err := descriptor.Marshal(d, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format (toml, yaml, json)")
	cmd.Flags().BoolVar(&project, "project", false, "print the built-in project descriptor")
	return cmd
}
