package cmd

import (
	"fmt"

	"github.com/promptspec/promptspec/pkg/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configured prompts document",
	Long: `Validate loads the configured prompts document and checks every
template against the schema rules. Validation stops at the first
failing rule, so a failing document reports exactly one error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		st := newPalette(config.Get().Output.NoColor)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s: %d templates\n", st.ok.Render("valid"), config.Get().File, registry.Count())
		for _, name := range registry.Names() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
