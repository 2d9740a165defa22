package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files (without extension).
	ConfigFileName = "gs1parse"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "GS1PARSE"
)

// Loader handles loading configuration from files and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a configuration loader with its own viper instance.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load loads configuration from the search paths, environment variables and
// defaults, then validates it. A missing config file is not an error.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.addConfigPaths()
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return l.unmarshalAndValidate()
}

// LoadWithFile loads configuration from a specific file path.
func (l *Loader) LoadWithFile(configFile string) (*Config, error) {
	if configFile == "" {
		return l.Load()
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configFile)
	}

	l.v.SetConfigFile(configFile)
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
	}

	return l.unmarshalAndValidate()
}

func (l *Loader) unmarshalAndValidate() (*Config, error) {
	var config Config
	if err := l.v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

// GetConfigFileUsed returns the path of the config file used.
func (l *Loader) GetConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// GetViper returns the underlying viper instance for advanced usage.
func (l *Loader) GetViper() *viper.Viper {
	return l.v
}

// addConfigPaths adds the standard configuration search paths.
func (l *Loader) addConfigPaths() {
	l.v.AddConfigPath(".")

	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home)
	}

	l.v.AddConfigPath("/etc/gs1parse")

	if configDir, exists := os.LookupEnv("XDG_CONFIG_HOME"); exists {
		l.v.AddConfigPath(filepath.Join(configDir, "gs1parse"))
	} else if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(filepath.Join(home, ".config", "gs1parse"))
	}
}

// setupEnvironmentVariables configures environment variable handling.
func (l *Loader) setupEnvironmentVariables() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
}

// setDefaults sets default values for all configuration options.
func (l *Loader) setDefaults() {
	defaults := DefaultConfig()

	l.v.SetDefault("log_level", defaults.LogLevel)

	l.v.SetDefault("parser.allow_ambiguous", defaults.Parser.AllowAmbiguous)
	l.v.SetDefault("parser.strict_mode", defaults.Parser.StrictMode)
	l.v.SetDefault("parser.max_alternatives", defaults.Parser.MaxAlternatives)
	l.v.SetDefault("parser.century_pivot", defaults.Parser.CenturyPivot)
	l.v.SetDefault("parser.normalize_separators", defaults.Parser.NormalizeSeparators)
	l.v.SetDefault("parser.separator_chars", defaults.Parser.SeparatorChars)

	l.v.SetDefault("beam.width", defaults.Beam.Width)
	l.v.SetDefault("beam.max_rounds", defaults.Beam.MaxRounds)
	l.v.SetDefault("beam.vendor_internal_ais", defaults.Beam.VendorInternalAIs)

	l.v.SetDefault("weights.gtincheckdigit", defaults.Weights.GTINCheckDigit)
	l.v.SetDefault("weights.expiryvalid", defaults.Weights.ExpiryValid)
	l.v.SetDefault("weights.unknowndaypenalty", defaults.Weights.UnknownDayPenalty)
	l.v.SetDefault("weights.tailorder", defaults.Weights.TailOrder)
	l.v.SetDefault("weights.embeddeddate", defaults.Weights.EmbeddedDate)
	l.v.SetDefault("weights.fullorder", defaults.Weights.FullOrder)
	l.v.SetDefault("weights.standardstart", defaults.Weights.StandardStart)
	l.v.SetDefault("weights.batchlengthcommon", defaults.Weights.BatchLengthCommon)
	l.v.SetDefault("weights.seriallengthcommon", defaults.Weights.SerialLengthCommon)
	l.v.SetDefault("weights.internalabsorbable", defaults.Weights.InternalAbsorbable)
	l.v.SetDefault("weights.repeatedbatch", defaults.Weights.RepeatedBatch)
	l.v.SetDefault("weights.repeatedserial", defaults.Weights.RepeatedSerial)
	l.v.SetDefault("weights.internalwithboth", defaults.Weights.InternalWithBoth)
	l.v.SetDefault("weights.longbatch", defaults.Weights.LongBatch)
	l.v.SetDefault("weights.shortserial", defaults.Weights.ShortSerial)
	l.v.SetDefault("weights.concisecomplete", defaults.Weights.ConciseComplete)
}
