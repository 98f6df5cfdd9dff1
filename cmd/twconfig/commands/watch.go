package commands

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agiangrant/twconfig/descriptor"
	"github.com/agiangrant/twconfig/lint"
	"github.com/agiangrant/twconfig/watch"
)

func (a *app) watchCommand() *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Reload the descriptor on change, optionally re-exporting tailwind.config.js",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.v.Set("config", args[0])
			}
			path, err := a.configPath()
			if err != nil {
				return err
			}
			if path == "" {
				return errors.New("no descriptor file to watch (run 'twconfig init' first)")
			}

			h, err := watch.NewHolder(path)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			apply := func(d *descriptor.Descriptor) {
				for _, f := range lint.Run(d) {
					fmt.Fprintf(out, "  %s %s\n", marker(f.Severity), f)
				}
				if export == "" {
					return
				}
				if err := writeJS(export, d); err != nil {
					fmt.Fprintf(out, "Error: %v\n", err)
					return
				}
				fmt.Fprintf(out, "✓ Exported %s\n", export)
			}

			updates := h.Subscribe()
			if err := h.Start(ctx); err != nil {
				return err
			}
			fmt.Fprintf(out, "Watching %s for changes...\n", path)
			fmt.Fprintln(out, "Press Ctrl+C to stop")
			apply(h.Get())

			for {
				select {
				case <-ctx.Done():
					return nil
				case d := <-updates:
					fmt.Fprintf(out, "\n%s changed\n", path)
					apply(d)
				}
			}
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "re-export tailwind.config.js to this path on every change")
	return cmd
}
