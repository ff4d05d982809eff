package config

import "time"

// Config holds runtime settings for the Filebox CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API.
//   - RequestTimeout: transport-level timeout applied to every request.
//   - DatabasePath: location of the local SQLite database holding the
//     persisted session.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "filebox.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
