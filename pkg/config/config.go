// Package config handles configuration for hmgo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/hmgo/pkg/core"
)

// Duration wraps time.Duration so config files can use "500ms" / "2s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return core.ErrInvalidConfig.WithCause(fmt.Errorf("parse duration %q: %w", raw, err))
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config represents the workspace configuration (hmgo.yaml).
type Config struct {
	// AgentURL is the base URL of the forwarded uitest agent.
	AgentURL string `yaml:"agentUrl"`

	// Timeout bounds each HTTP request to the agent.
	Timeout Duration `yaml:"timeout"`

	// Settle is the pause applied after every device action so the UI
	// can come to rest before the next capture.
	Settle Duration `yaml:"settle"`

	// LongPress is the hold duration for long-press gestures.
	LongPress Duration `yaml:"longPress"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		AgentURL:  "http://127.0.0.1:8012",
		Timeout:   Duration(30 * time.Second),
		Settle:    Duration(500 * time.Millisecond),
		LongPress: Duration(1500 * time.Millisecond),
	}
}

// Load loads configuration from a file, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, core.ErrInvalidConfig.WithCause(err)
	}
	if cfg.AgentURL == "" {
		return nil, core.ErrInvalidConfig.WithMessage("agentUrl must not be empty")
	}

	return cfg, nil
}

// LoadFromDir looks for hmgo.yaml or hmgo.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, "hmgo.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	configPath = filepath.Join(dir, "hmgo.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, run on defaults
	return Default(), nil
}
