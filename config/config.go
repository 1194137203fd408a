package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// PlanFileEnv is the environment variable the original tool reads for the
// plan file location. It is kept for compatibility and has lower precedence
// than the config file and the --plan flag.
const PlanFileEnv = "plan_file_address"

type Config struct {
	Plan    PlanConfig    `json:"plan"`
	UI      UIConfig      `json:"ui"`
	Logging LoggingConfig `json:"logging"`
	Metrics MetricsConfig `json:"metrics"`
}

// PlanConfig locates the plan file.
type PlanConfig struct {
	Path string `json:"path"`
}

// UIConfig tunes the dashboard.
type UIConfig struct {
	// RefreshSeconds is the evaluation cadence. The dashboard aligns the
	// first refresh to the next minute boundary regardless.
	RefreshSeconds int `json:"refresh_seconds"`
	// IncludeBreaks keeps "break" events eligible as the next upcoming
	// event. Off by default, matching the main dashboard view.
	IncludeBreaks bool `json:"include_breaks"`
}

// LoggingConfig controls where log lines go while the dashboard owns the
// terminal. An empty path discards dashboard logs.
type LoggingConfig struct {
	Path string `json:"path"`
}

// MetricsConfig enables the optional Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
}

// Load reads the config file at path plus SECRETARY_ environment overrides.
// A missing file is not an error: defaults apply, so the tool runs with no
// setup at all.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("SECRETARY_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "secretary_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Plan.Path == "" {
		if v := os.Getenv(PlanFileEnv); v != "" {
			c.Plan.Path = v
		} else {
			c.Plan.Path = "plan.txt"
		}
	}
	if c.UI.RefreshSeconds == 0 {
		c.UI.RefreshSeconds = 60
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":2112"
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.UI.RefreshSeconds < 1 {
		return fmt.Errorf("ui.refresh_seconds must be positive, got %d", c.UI.RefreshSeconds)
	}
	return nil
}
