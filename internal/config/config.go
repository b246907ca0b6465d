// Package config defines the dashboard configuration and loads it from YAML
// with environment overrides.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aromadata/aromadata/pkg/constants"
	"github.com/aromadata/aromadata/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for aromadata.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Ticker  TickerConfig  `yaml:"ticker,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds the default export format of the CLI.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, xlsx
}

// TickerConfig tunes the price simulator.
type TickerConfig struct {
	Interval     time.Duration `yaml:"interval,omitempty"`
	InitialPrice float64       `yaml:"initialPrice,omitempty"`
	InitialDelta float64       `yaml:"initialDelta,omitempty"`
	Floor        float64       `yaml:"floor,omitempty"`
	MaxDelta     float64       `yaml:"maxDelta,omitempty"`
	Seed         uint64        `yaml:"seed,omitempty"` // 0 seeds from the clock
	HistorySize  int           `yaml:"historySize,omitempty"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputfile", "")
	v.SetDefault("output.format", constants.ExportFormatPretty)
	v.SetDefault("ticker.interval", constants.DefaultTickInterval)
	v.SetDefault("ticker.initialprice", constants.InitialPrice)
	v.SetDefault("ticker.initialdelta", constants.InitialDelta)
	v.SetDefault("ticker.floor", constants.PriceFloor)
	v.SetDefault("ticker.maxdelta", constants.MaxTickDelta)
	v.SetDefault("ticker.seed", 0)
	v.SetDefault("ticker.historysize", constants.DefaultHistorySize)

	// AROMADATA_TICKER_INTERVAL overrides ticker.interval, and so on.
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

// Defaults returns the configuration used when no file is given, including
// any environment overrides.
func Defaults() (*Configuration, error) {
	return decode(newViper())
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		warnings = append(warnings, err.Error())
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		warnings = append(warnings, err.Error())
	}
	if c.Output.Format != "" {
		if err := validation.ValidateExportFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	warnings = append(warnings, validation.ValidateTicker(validation.TickerSettings{
		Interval:     c.Ticker.Interval,
		InitialPrice: c.Ticker.InitialPrice,
		Floor:        c.Ticker.Floor,
		MaxDelta:     c.Ticker.MaxDelta,
		HistorySize:  c.Ticker.HistorySize,
	})...)

	return warnings
}
