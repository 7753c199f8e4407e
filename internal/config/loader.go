package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"window":      "index.window",
	"min-periods": "index.min_periods",
	"prob-zero":   "index.prob_zero",
	"dist":        "index.distribution",
	"group":       "index.grouping",
	"partial":     "index.partial",
	"input":       "input.path",
	"column":      "input.column",
	"prec-column": "input.prec_column",
	"evap-column": "input.evap_column",
	"date-column": "input.date_column",
	"delimiter":   "input.delimiter",
	"scale":       "input.scale",
	"start":       "input.start",
	"end":         "input.end",
	"output":      "output.path",
	"log-level":   "logging.level",
	"log-format":  "logging.format",
}

// Load loads configuration from file, environment and flags, in increasing
// order of precedence. flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("spei")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	setDefaults(v)

	v.SetEnvPrefix("SPEI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("index.window", "")
	v.SetDefault("index.min_periods", 0)
	v.SetDefault("index.prob_zero", false)
	v.SetDefault("index.distribution", "")
	v.SetDefault("index.grouping", "month")
	v.SetDefault("index.partial", false)

	v.SetDefault("input.path", "")
	v.SetDefault("input.column", "")
	v.SetDefault("input.prec_column", "")
	v.SetDefault("input.evap_column", "")
	v.SetDefault("input.date_column", "")
	v.SetDefault("input.start", "")
	v.SetDefault("input.end", "")
	v.SetDefault("input.delimiter", ",")
	v.SetDefault("input.scale", 1.0)

	v.SetDefault("output.path", "-")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_path", "stderr")
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			Grouping: "month",
		},
		Input: InputConfig{
			Delimiter: ",",
			Scale:     1,
		},
		Output: OutputConfig{
			Path: "-",
		},
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "console",
			OutputPath: "stderr",
		},
	}
}
