package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Completion CompletionConfig  `toml:"completion"`
	Timing     TimingConfig      `toml:"timing"`
	Shortcuts  map[string]string `toml:"shortcuts"`
}

type CompletionConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
}

type TimingConfig struct {
	DebounceMs int `toml:"debounce_ms"`
	SettleMs   int `toml:"settle_ms"`
}

// Default configuration
func defaultConfig() *Config {
	return &Config{
		Completion: CompletionConfig{
			Provider: "mistral",
			Model:    "mistral-large-latest",
		},
		Timing: TimingConfig{
			DebounceMs: 500,
			SettleMs:   150,
		},
		Shortcuts: map[string]string{
			"f1": "Make this text more diplomatic:\n{selection}",
			"f2": "Debug this code:\n{selection}",
			"f3": "Correct the spelling mistakes:\n{selection}",
		},
	}
}

// Dir returns the configuration directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}

	dir := filepath.Join(base, "shortchat")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}

// ConfigPath returns the path to the configuration file
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads the configuration from the TOML file.
// If the file doesn't exist, it creates it with default values.
// An error is only returned when the configuration directory cannot be
// set up; an unparseable file falls back to defaults with no shortcuts.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return loadFrom(configPath)
}

func loadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := defaultConfig()
		if err := save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		slog.Info("Created default config file", "path", path)
		return cfg, nil
	}

	// Decode into defaults so missing fields keep their default values.
	// The shortcut map starts empty: the persisted file owns the full set,
	// merging defaults back would resurrect entries the user deleted.
	cfg := defaultConfig()
	cfg.Shortcuts = map[string]string{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		slog.Error("Config file is unparseable, no shortcuts will be active", "path", path, "error", err)
		fallback := defaultConfig()
		fallback.Shortcuts = nil
		return fallback, nil
	}

	return cfg, nil
}

// save writes the configuration to the TOML file
func save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}
