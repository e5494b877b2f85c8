// Package config handles loading and saving aq configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/aq/config.yaml
//   - State:  ~/.local/state/aq/state.yaml (last-used view state)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// UIConfig holds dashboard preference settings.
type UIConfig struct {
	DefaultContext string  `yaml:"default_context,omitempty"` // general, safety, schedule, cost
	FadeOpacity    float64 `yaml:"fade_opacity,omitempty"`    // opacity for non-spotlit bubbles (0-1)
	CompactHeader  bool    `yaml:"compact_header,omitempty"`
}

// ExportConfig holds export preference settings.
type ExportConfig struct {
	Format string `yaml:"format,omitempty"` // svg, png, json
	Dir    string `yaml:"dir,omitempty"`    // default output directory
}

// Config is the top-level configuration for aq.
type Config struct {
	DataPath string       `yaml:"data_path,omitempty"` // default dataset file, embedded table if empty
	UI       UIConfig     `yaml:"ui,omitempty"`
	Export   ExportConfig `yaml:"export,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			DefaultContext: "general",
			FadeOpacity:    0.15,
		},
		Export: ExportConfig{
			Format: "svg",
		},
	}
}

// ConfigDir returns the XDG config directory for aq.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "aq")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aq")
}

// StateDir returns the XDG state directory for aq.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "aq")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "aq")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	// Out-of-range overrides fall back to the default rather than erroring;
	// a broken config should never keep the dashboard from starting.
	if cfg.UI.FadeOpacity <= 0 || cfg.UI.FadeOpacity > 1 {
		cfg.UI.FadeOpacity = DefaultConfig().UI.FadeOpacity
	}

	cfg.DataPath = expandHome(cfg.DataPath)
	cfg.Export.Dir = expandHome(cfg.Export.Dir)

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// State is the view state carried across sessions. It is written on quit and
// lives apart from the user-edited config file.
type State struct {
	LastContext string `yaml:"last_context,omitempty"`
}

// StatePath returns the full path to state.yaml.
func StatePath() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "state.yaml")
}

// LoadState reads the persisted view state. A missing file yields a zero
// State, not an error.
func LoadState() (State, error) {
	var st State
	path := StatePath()
	if path == "" {
		return st, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("reading state: %w", err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return st, fmt.Errorf("parsing state: %w", err)
	}
	return st, nil
}

// SaveState writes the view state for the next session.
func SaveState(st State) error {
	path := StatePath()
	if path == "" {
		return fmt.Errorf("cannot determine state directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
