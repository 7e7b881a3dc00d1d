// Package config handles server configuration for japan-law-mcp.
//
// Configuration is a YAML file, with every field optional and
// environment-variable overrides (LAWDB_*) applied on top, so the server
// runs with zero configuration out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config filename looked up in the working directory
// when no explicit path is given.
const DefaultFile = "japan-law-mcp.yaml"

// Config holds the server and ingestion settings.
type Config struct {
	// DBPath is the SQLite corpus database location.
	DBPath string `yaml:"db_path"`

	// EGovBaseURL overrides the e-Gov Laws API endpoint.
	EGovBaseURL string `yaml:"egov_base_url"`

	// EGovRateLimit caps e-Gov requests per second.
	EGovRateLimit float64 `yaml:"egov_rate_limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DBPath:        filepath.Join(home, ".japan-law-mcp", "laws.db"),
		EGovRateLimit: 2.0,
	}
}

// Load reads configuration from path, falling back to defaults for a
// missing file, then applies LAWDB_* environment overrides. An empty
// path means DefaultFile in the working directory.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	applyEnv(&cfg)

	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("config: db_path must not be empty")
	}
	if cfg.EGovRateLimit <= 0 {
		cfg.EGovRateLimit = Default().EGovRateLimit
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LAWDB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LAWDB_EGOV_URL"); v != "" {
		cfg.EGovBaseURL = v
	}
	if v := os.Getenv("LAWDB_EGOV_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.EGovRateLimit = f
		}
	}
}
