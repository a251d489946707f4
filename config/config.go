package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/datacite/datacite"
)

// EnvPrefix prefixes every environment override, e.g. DATACITE_DATACITE_PASSWORD
const EnvPrefix = "DATACITE"

// Load loads the configuration from file, a .env file and the environment.
// Without an explicit path a missing config file is not an error.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".datacite"))
		}

		// Check /etc
		v.AddConfigPath("/etc/datacite/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values. Every key needs a default so
// AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	// DataCite defaults
	v.SetDefault("datacite.url", datacite.DefaultBaseURL)
	v.SetDefault("datacite.mode", string(datacite.ModePublic))
	v.SetDefault("datacite.username", "")
	v.SetDefault("datacite.password", "")
	v.SetDefault("datacite.mailto", "")
	v.SetDefault("datacite.timeout", "30s")

	// Client defaults
	v.SetDefault("client.concurrency", 5)
	v.SetDefault("client.page_size", 100)

	v.SetDefault("filter.presets", map[string]string{})

	// Safety defaults
	v.SetDefault("safety.dry_run", false)
	v.SetDefault("safety.confirm_delete", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.DataCite.URL == "" {
		return fmt.Errorf("datacite.url is required")
	}
	u, err := url.Parse(cfg.DataCite.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("datacite.url must be an http(s) URL: %s", cfg.DataCite.URL)
	}

	mode, err := datacite.ParseMode(cfg.DataCite.Mode)
	if err != nil {
		return fmt.Errorf("invalid datacite.mode: %s (must be 'public' or 'member')", cfg.DataCite.Mode)
	}
	if mode == datacite.ModeMember && (cfg.DataCite.Username == "" || cfg.DataCite.Password == "") {
		return fmt.Errorf("datacite.username and datacite.password are required in member mode")
	}

	if cfg.DataCite.Timeout < 0 {
		return fmt.Errorf("datacite.timeout must not be negative")
	}

	if cfg.Client.Concurrency < 1 {
		return fmt.Errorf("client.concurrency must be at least 1")
	}
	if cfg.Client.PageSize < 1 || cfg.Client.PageSize > 1000 {
		return fmt.Errorf("client.page_size must be between 1 and 1000")
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// Member reports whether the configuration selects the member API
func (c *Config) Member() bool {
	mode, err := datacite.ParseMode(c.DataCite.Mode)
	return err == nil && mode == datacite.ModeMember
}
