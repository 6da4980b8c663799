package cmd

import (
	"fmt"

	"github.com/promptspec/promptspec/pkg/config"
	"github.com/spf13/cobra"
)

var listNamesOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the prompt templates in the configured document",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if listNamesOnly {
			for _, name := range registry.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		}

		st := newPalette(config.Get().Output.NoColor)
		for _, tmpl := range registry.All() {
			line := st.name.Render(tmpl.Name())
			if version := tmpl.Version(); version != "" {
				line += " " + st.dim.Render("v"+version)
			}
			if n := tmpl.Placeholders().Len(); n > 0 {
				line += " " + st.dim.Render(fmt.Sprintf("(%d placeholders)", n))
			}
			if desc := tmpl.Description(); desc != "" {
				line += "  " + desc
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out, st.dim.Render(fmt.Sprintf("%d templates", registry.Count())))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listNamesOnly, "names", false, "print template names only, one per line")
	rootCmd.AddCommand(listCmd)
}
