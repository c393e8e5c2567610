package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents application configuration
type Config struct {
	Location string         `mapstructure:"location"` // IANA time zone used for "today"
	Output   OutputConfig   `mapstructure:"output"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
}

// OutputConfig represents output rendering configuration
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text", "json" or "yaml"
}

// CalendarConfig represents working-day calendar configuration
type CalendarConfig struct {
	HolidaysFile   string `mapstructure:"holidays_file"`
	WorkdayHours   int    `mapstructure:"workday_hours"`
	ShortenedHours int    `mapstructure:"shortened_hours"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("location", "Local")
	v.SetDefault("output.format", FormatText)
	v.SetDefault("calendar.holidays_file", "")
	v.SetDefault("calendar.workday_hours", 8)
	v.SetDefault("calendar.shortened_hours", 7)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "warn")
}

// Load loads configuration from file. An explicit path must exist; without
// one the default locations are searched and defaults are used if none has
// a config file
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.weekling")
		v.AddConfigPath("/etc/weekling")
	}

	// Read environment variables, e.g. WEEKLING_OUTPUT_FORMAT
	v.SetEnvPrefix("weekling")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.GetLocation(); err != nil {
		return fmt.Errorf("location %q is invalid: %w", c.Location, err)
	}

	switch strings.ToLower(c.Output.Format) {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("output.format must be 'text', 'json' or 'yaml', got '%s'", c.Output.Format)
	}

	if c.Calendar.WorkdayHours <= 0 || c.Calendar.WorkdayHours > 24 {
		return fmt.Errorf("calendar.workday_hours must be between 1 and 24")
	}
	if c.Calendar.ShortenedHours <= 0 || c.Calendar.ShortenedHours > c.Calendar.WorkdayHours {
		return fmt.Errorf("calendar.shortened_hours must be positive and not exceed calendar.workday_hours")
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got '%s'", c.Log.Level)
	}

	return nil
}

// GetLocation returns the configured time zone. Empty and "Local" mean the
// system zone
func (c *Config) GetLocation() (*time.Location, error) {
	if c.Location == "" || strings.EqualFold(c.Location, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(c.Location)
}

// ExpandEnvVars expands environment variables in config paths
func (c *Config) ExpandEnvVars() {
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
