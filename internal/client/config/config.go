package config

import "time"

// Config holds runtime settings for the PaperDock CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API, no trailing slash.
//   - RequestTimeout: per-request deadline for API calls.
//   - StorePath: SQLite DSN for the local session store.
//   - DownloadDir: where exported documents are written.
//   - AutosaveDelay: quiet period after the last edit before an automatic save.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StorePath      string
	DownloadDir    string
	AutosaveDelay  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.StorePath = "paperdock.db"
	c.DownloadDir = "downloads"
	c.AutosaveDelay = 2 * time.Second
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
