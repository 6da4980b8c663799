package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/promptspec/promptspec/pkg/config"
	"github.com/promptspec/promptspec/pkg/prompt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showAsYAML bool

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a single prompt template in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(cmd)
		if err != nil {
			return err
		}
		tmpl, err := registry.GetRequired(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		noColor := config.Get().Output.NoColor

		if showAsYAML {
			// Re-emit the template as a document of its own so the
			// output can be fed straight back into promptspec.
			doc := map[string][]prompt.Spec{"prompts": {tmpl.Spec()}}
			encoded, err := yaml.Marshal(doc)
			if err != nil {
				return fmt.Errorf("failed to encode template %q: %w", tmpl.Name(), err)
			}
			return writeYAML(out, string(encoded), noColor)
		}

		printTemplate(out, tmpl, newPalette(noColor))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showAsYAML, "yaml", false, "print the template as a YAML document")
	rootCmd.AddCommand(showCmd)
}

func printTemplate(out io.Writer, tmpl *prompt.Template, st palette) {
	header := st.name.Render(tmpl.Name())
	if version := tmpl.Version(); version != "" {
		header += " " + st.dim.Render("v"+version)
	}
	fmt.Fprintln(out, header)
	if desc := tmpl.Description(); desc != "" {
		fmt.Fprintln(out, desc)
	}

	if system := tmpl.SystemMessage(); system != "" {
		fmt.Fprintf(out, "\n%s\n%s\n", st.title.Render("System message:"), indent(system))
	}

	if placeholders := tmpl.Placeholders(); placeholders.Len() > 0 {
		fmt.Fprintf(out, "\n%s\n", st.title.Render("Placeholders:"))
		for _, name := range placeholders.Names() {
			def, _ := placeholders.Get(name)
			requirement := "optional"
			if def.Required {
				requirement = "required"
			}
			fmt.Fprintf(out, "  %-20s %-8s %s\n", name, typeOrDefault(def.Type), st.dim.Render(requirement))
		}
	}

	params := tmpl.Parameters()
	var lines []string
	if params.Temperature != nil {
		lines = append(lines, fmt.Sprintf("temperature: %v", *params.Temperature))
	}
	if params.TopP != nil {
		lines = append(lines, fmt.Sprintf("topP: %v", *params.TopP))
	}
	if params.MaxTokens != nil {
		lines = append(lines, fmt.Sprintf("maxTokens: %d", *params.MaxTokens))
	}
	if len(params.StopSequences) > 0 {
		lines = append(lines, fmt.Sprintf("stopSequences: %v", params.StopSequences))
	}
	if len(lines) > 0 {
		fmt.Fprintf(out, "\n%s\n%s\n", st.title.Render("Parameters:"), indent(strings.Join(lines, "\n")))
	}

	if format := tmpl.OutputFormat(); format != "" {
		fmt.Fprintf(out, "\n%s %s\n", st.title.Render("Output format:"), format)
	}

	fmt.Fprintf(out, "\n%s\n%s\n", st.title.Render("Template:"), indent(tmpl.Text()))
}

func typeOrDefault(declared string) string {
	if declared == "" {
		return prompt.TypeString
	}
	return strings.ToLower(declared)
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

// writeYAML writes source to out, syntax highlighted unless color
// output is disabled. Highlighting failures fall back to plain text.
func writeYAML(out io.Writer, source string, noColor bool) error {
	if noColor {
		_, err := io.WriteString(out, source)
		return err
	}

	lexer := lexers.Get("yaml")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		_, werr := io.WriteString(out, source)
		return werr
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, styles.Get("monokai"), iterator); err != nil {
		_, werr := io.WriteString(out, source)
		return werr
	}
	_, err = io.WriteString(out, buf.String())
	return err
}
