package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	renderSet        []string
	renderSetString  []string
	renderValuesFile string
)

var renderCmd = &cobra.Command{
	Use:   "render <name>",
	Short: "Render a prompt template with placeholder values",
	Long: `Render substitutes placeholder values into the named template and
prints the result.

Values passed with --set are parsed as YAML scalars, so numbers and
booleans keep their types and satisfy typed placeholder declarations.
Use --set-string to force a literal string, or --values to read a YAML
mapping of values from a file. Later flags override earlier sources.`,
	Example: `  promptspec render greeting --set name=Alice --set age=30
  promptspec render summary --values values.yaml --set-string id=0042`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		tmpl, err := registry.GetRequired(args[0])
		if err != nil {
			return err
		}

		values, err := collectValues(renderValuesFile, renderSet, renderSetString)
		if err != nil {
			return err
		}

		rendered, err := tmpl.Render(values)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringArrayVar(&renderSet, "set", nil, "placeholder value as key=value, parsed as a YAML scalar (repeatable)")
	renderCmd.Flags().StringArrayVar(&renderSetString, "set-string", nil, "placeholder value as key=value, taken literally (repeatable)")
	renderCmd.Flags().StringVar(&renderValuesFile, "values", "", "YAML file with a mapping of placeholder values")
	rootCmd.AddCommand(renderCmd)
}

// collectValues merges placeholder values from the values file and the
// --set style flags. Flags override the file, --set-string overrides
// --set.
func collectValues(file string, set, setString []string) (map[string]any, error) {
	values := map[string]any{}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read values file %s: %w", file, err)
		}
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse values file %s: %w", file, err)
		}
	}

	for _, pair := range set {
		key, raw, err := splitPair(pair, "--set")
		if err != nil {
			return nil, err
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		values[key] = value
	}

	for _, pair := range setString {
		key, raw, err := splitPair(pair, "--set-string")
		if err != nil {
			return nil, err
		}
		values[key] = raw
	}

	return values, nil
}

func splitPair(pair, flag string) (string, string, error) {
	key, value, ok := strings.Cut(pair, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid %s value %q, expected key=value", flag, pair)
	}
	return key, value, nil
}
