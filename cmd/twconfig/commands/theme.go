package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agiangrant/twconfig/lint"
	"github.com/agiangrant/twconfig/theme"
)

func (a *app) themeCommand() *cobra.Command {
	var extendedOnly bool
	cmd := &cobra.Command{
		Use:   "theme [category]",
		Short: "Print resolved theme tokens",
		Long:  "Print the default theme with the descriptor's extension merged in. Colors are shown with a swatch.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := a.load()
			if err != nil {
				return err
			}

			th := theme.ForDescriptor(d)
			if extendedOnly {
				th = theme.Theme(d.Extension())
			}

			categories := th.Categories()
			if len(args) == 1 {
				if _, ok := th[args[0]]; !ok {
					return fmt.Errorf("unknown theme category %q", args[0])
				}
				categories = []string{args[0]}
			}

			out := cmd.OutOrStdout()
			for _, category := range categories {
				printCategory(out, th, category)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&extendedOnly, "extended", false, "only print tokens from the descriptor's extension")
	return cmd
}

var categoryStyle = lipgloss.NewStyle().Bold(true)

func printCategory(w io.Writer, th theme.Theme, category string) {
	fmt.Fprintln(w, categoryStyle.Render(category))
	for _, token := range th.Tokens(category) {
		value := th[category][token]
		if category == "colors" && lint.ValidColor(value) {
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ")
			fmt.Fprintf(w, "  %s %-16s %s\n", swatch, token, value)
			continue
		}
		fmt.Fprintf(w, "  %-19s %s\n", token, value)
	}
}
