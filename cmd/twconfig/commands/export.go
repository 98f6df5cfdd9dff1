package commands

import (
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"github.com/agiangrant/twconfig/descriptor"
)

func (a *app) exportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write tailwind.config.js for the Tailwind CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, source, err := a.load()
			if err != nil {
				return err
			}

			if output == "-" {
				return descriptor.WriteJS(cmd.OutOrStdout(), d)
			}

			if err := writeJS(output, d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %s to %s\n", source, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "tailwind.config.js", `output file ("-" for stdout)`)
	return cmd
}

// writeJS replaces path atomically.
func writeJS(path string, d *descriptor.Descriptor) error {
	f, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer f.Cleanup()
	if err := descriptor.WriteJS(f, d); err != nil {
		return err
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
