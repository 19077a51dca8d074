// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/finbot/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// MemoryDatabase selects the in-process repository instead of SQLite.
const MemoryDatabase = ":memory:"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Database struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"database" yaml:"database"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`

	Defaults struct {
		MonthlyBudget string `mapstructure:"monthly_budget" yaml:"monthly_budget"`
		Tone          string `mapstructure:"tone" yaml:"tone"`
	} `mapstructure:"defaults" yaml:"defaults"`

	Display struct {
		CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	} `mapstructure:"display" yaml:"display"`

	Export struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"export" yaml:"export"`

	User struct {
		Name string `mapstructure:"name" yaml:"name"`
	} `mapstructure:"user" yaml:"user"`
}

// Load initializes configuration with hierarchical loading:
// defaults, then a config file, then FINBOT_* environment variables.
// An explicit configFile must exist; otherwise config.yaml is searched in
// $HOME/.finbot, .finbot and the working directory and may be absent.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.finbot")
		v.AddConfigPath(".finbot")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FINBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.path", "finbot.db")
	v.SetDefault("categories.file", "categories.yaml")

	v.SetDefault("defaults.monthly_budget", models.DefaultMonthlyBudget)
	v.SetDefault("defaults.tone", string(models.DefaultTone))

	v.SetDefault("display.currency_symbol", "₹")
	v.SetDefault("export.delimiter", ",")
	v.SetDefault("user.name", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Database.Path) == "" {
		return fmt.Errorf("database.path must not be empty")
	}

	if len([]rune(config.Export.Delimiter)) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	budget, err := models.ParseAmount(config.Defaults.MonthlyBudget)
	if err != nil {
		return fmt.Errorf("invalid defaults.monthly_budget: %w", err)
	}
	if budget.IsNegative() {
		return fmt.Errorf("defaults.monthly_budget must not be negative, got: %s", config.Defaults.MonthlyBudget)
	}

	if _, err := models.ParseTone(config.Defaults.Tone); err != nil {
		return fmt.Errorf("invalid defaults.tone: %w", err)
	}

	return nil
}

// DefaultMonthlyBudget returns the budget applied to users without one on record.
func (c *Config) DefaultMonthlyBudget() decimal.Decimal {
	budget, err := models.ParseAmount(c.Defaults.MonthlyBudget)
	if err != nil {
		return models.MustParseAmount(models.DefaultMonthlyBudget)
	}
	return budget
}

// DefaultTone returns the tone used for new users when none is given.
func (c *Config) DefaultTone() models.Tone {
	return models.Tone(c.Defaults.Tone).OrDefault()
}

// ExportDelimiter returns the configured CSV delimiter as a rune.
func (c *Config) ExportDelimiter() rune {
	runes := []rune(c.Export.Delimiter)
	if len(runes) == 0 {
		return ','
	}
	return runes[0]
}

// UsesMemoryDatabase reports whether the in-process repository is selected.
func (c *Config) UsesMemoryDatabase() bool {
	return c.Database.Path == MemoryDatabase
}
