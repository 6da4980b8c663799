package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the promptspec tool configuration.
type Config struct {
	// File is the prompts document the CLI loads.
	File    string        `mapstructure:"file"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// OutputConfig holds terminal output configuration.
type OutputConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

// Global config instance
var cfg *Config

// Get returns the global config instance.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg
}

// Load loads configuration from defaults, an optional config file, and the
// environment. When cfgFile is empty the working directory is searched for
// a .promptspec.yaml file; a missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".promptspec")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PROMPTSPEC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Only an explicitly requested file must exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults() {
	viper.SetDefault("file", "prompts.yaml")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("output.no_color", false)
}
