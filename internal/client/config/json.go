package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/filebox/filebox/internal/flagx"
	"github.com/filebox/filebox/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so timeouts can be written either as strings like "30s" or
// as integer nanoseconds.
type JSONConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DatabasePath   string         `json:"database_path"`
}

// parseJSON overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flag. When the flag is absent, nothing happens.
// Read or unmarshal errors panic; the composition root treats a broken
// explicit config file as fatal. Empty fields leave the defaults in place.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
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
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
