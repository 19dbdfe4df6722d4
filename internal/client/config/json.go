package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/paperdock/paperdock/internal/flagx"
	"github.com/paperdock/paperdock/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "2s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JSONConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StorePath      string         `json:"store_path"`
	DownloadDir    string         `json:"download_dir"`
	AutosaveDelay  timex.Duration `json:"autosave_delay"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JSONConfigPath; if empty,
// nothing is loaded. Only fields present in the file override defaults.
// Panics on read or unmarshal errors.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JSONConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
	if jc.AutosaveDelay.Duration != 0 {
		cfg.AutosaveDelay = time.Duration(jc.AutosaveDelay.Duration)
	}
}
