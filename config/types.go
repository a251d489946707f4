package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	DataCite DataCiteConfig `mapstructure:"datacite"`
	Client   ClientConfig   `mapstructure:"client"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Safety   SafetyConfig   `mapstructure:"safety"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DataCiteConfig holds DataCite API connection details
type DataCiteConfig struct {
	URL      string        `mapstructure:"url"`
	Mode     string        `mapstructure:"mode"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Mailto   string        `mapstructure:"mailto"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// ClientConfig tunes how the CLI drives the API
type ClientConfig struct {
	Concurrency int `mapstructure:"concurrency"`
	PageSize    int `mapstructure:"page_size"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmDelete bool `mapstructure:"confirm_delete"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
