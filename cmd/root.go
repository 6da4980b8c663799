package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/charmbracelet/lipgloss"
	"github.com/promptspec/promptspec/pkg/config"
	"github.com/promptspec/promptspec/pkg/logger"
	"github.com/promptspec/promptspec/pkg/prompt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "promptspec",
	Short: "Inspect, validate and render parameterized prompt templates",
	Long: `promptspec works with YAML documents of named prompt templates.

Templates carry {placeholder} markers with optional type declarations,
model parameters such as temperature and maxTokens, and free-form model
configuration. The CLI loads a document, validates it, and can render
any template with values supplied on the command line.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		settings := config.Get()
		log := logger.Setup(settings.Logging.Level)
		cmd.SetContext(clog.WithLogger(cmd.Context(), log))
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.promptspec.yaml)")
	rootCmd.PersistentFlags().StringP("file", "f", "prompts.yaml", "path to the prompts document")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output.no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
}

// loadRegistry loads the configured prompts document into a fresh
// registry.
func loadRegistry(cmd *cobra.Command) (*prompt.Registry, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	registry := prompt.NewRegistry()
	if err := registry.LoadFile(ctx, config.Get().File); err != nil {
		return nil, err
	}
	return registry, nil
}

// palette holds the lipgloss styles used by the subcommands. With
// color output disabled every style is a no-op.
type palette struct {
	title lipgloss.Style
	name  lipgloss.Style
	dim   lipgloss.Style
	ok    lipgloss.Style
}

func newPalette(noColor bool) palette {
	if noColor {
		plain := lipgloss.NewStyle()
		return palette{title: plain, name: plain, dim: plain, ok: plain}
	}

	return palette{
		title: lipgloss.NewStyle().Bold(true),
		name:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB000")),
		dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
	}
}
