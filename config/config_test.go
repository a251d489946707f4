package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		DataCite: DataCiteConfig{
			URL:     "https://api.datacite.org",
			Mode:    "public",
			Timeout: 30 * time.Second,
		},
		Client: ClientConfig{
			Concurrency: 5,
			PageSize:    100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		errContains string
	}{
		{
			name:   "valid public config",
			modify: func(*Config) {},
		},
		{
			name: "valid member config",
			modify: func(c *Config) {
				c.DataCite.Mode = "Member"
				c.DataCite.Username = "DATACITE.TEST"
				c.DataCite.Password = "secret"
			},
		},
		{
			name:        "missing url",
			modify:      func(c *Config) { c.DataCite.URL = "" },
			errContains: "datacite.url is required",
		},
		{
			name:        "url without scheme",
			modify:      func(c *Config) { c.DataCite.URL = "api.datacite.org" },
			errContains: "datacite.url must be an http(s) URL",
		},
		{
			name:        "unknown mode",
			modify:      func(c *Config) { c.DataCite.Mode = "admin" },
			errContains: "invalid datacite.mode: admin",
		},
		{
			name: "member mode without password",
			modify: func(c *Config) {
				c.DataCite.Mode = "member"
				c.DataCite.Username = "DATACITE.TEST"
			},
			errContains: "required in member mode",
		},
		{
			name:        "negative timeout",
			modify:      func(c *Config) { c.DataCite.Timeout = -time.Second },
			errContains: "datacite.timeout",
		},
		{
			name:        "zero concurrency",
			modify:      func(c *Config) { c.Client.Concurrency = 0 },
			errContains: "client.concurrency",
		},
		{
			name:        "page size too large",
			modify:      func(c *Config) { c.Client.PageSize = 1001 },
			errContains: "client.page_size",
		},
		{
			name:        "page size zero",
			modify:      func(c *Config) { c.Client.PageSize = 0 },
			errContains: "client.page_size",
		},
		{
			name:        "empty preset",
			modify:      func(c *Config) { c.Filter.Presets = map[string]string{"broken": " "} },
			errContains: `filter preset "broken"`,
		},
		{
			name:        "invalid logging level",
			modify:      func(c *Config) { c.Logging.Level = "verbose" },
			errContains: "invalid logging level: verbose",
		},
		{
			name:        "invalid logging format",
			modify:      func(c *Config) { c.Logging.Format = "xml" },
			errContains: "invalid logging format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.datacite.org", cfg.DataCite.URL)
	assert.Equal(t, "public", cfg.DataCite.Mode)
	assert.Equal(t, 30*time.Second, cfg.DataCite.Timeout)
	assert.Equal(t, 5, cfg.Client.Concurrency)
	assert.Equal(t, 100, cfg.Client.PageSize)
	assert.True(t, cfg.Safety.ConfirmDelete)
	assert.False(t, cfg.Safety.DryRun)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.False(t, cfg.Member())
}

func TestLoadFile(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "datacite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
datacite:
  url: https://api.test.datacite.org
  mode: member
  username: DATACITE.TEST
  password: secret
  mailto: ops@example.org
  timeout: 10s
client:
  concurrency: 8
  page_size: 250
filter:
  presets:
    software: 'resourceTypeGeneral == "Software"'
logging:
  level: debug
  format: json
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.test.datacite.org", cfg.DataCite.URL)
	assert.True(t, cfg.Member())
	assert.Equal(t, "DATACITE.TEST", cfg.DataCite.Username)
	assert.Equal(t, "ops@example.org", cfg.DataCite.Mailto)
	assert.Equal(t, 10*time.Second, cfg.DataCite.Timeout)
	assert.Equal(t, 8, cfg.Client.Concurrency)
	assert.Equal(t, 250, cfg.Client.PageSize)
	assert.Equal(t, map[string]string{"software": `resourceTypeGeneral == "Software"`}, cfg.Filter.Presets)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadSearchesCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("client:\n  page_size: 42\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Client.PageSize)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config")
}

func TestLoadInvalid(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("datacite:\n  mode: member\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DATACITE_DATACITE_MODE", "member")
	t.Setenv("DATACITE_DATACITE_USERNAME", "DATACITE.TEST")
	t.Setenv("DATACITE_DATACITE_PASSWORD", "from-env")
	t.Setenv("DATACITE_CLIENT_PAGE_SIZE", "25")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Member())
	assert.Equal(t, "from-env", cfg.DataCite.Password)
	assert.Equal(t, 25, cfg.Client.PageSize)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATACITE_DATACITE_MAILTO=dotenv@example.org\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DATACITE_DATACITE_MAILTO") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv@example.org", cfg.DataCite.Mailto)
}
