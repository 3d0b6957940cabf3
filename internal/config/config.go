package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all glucose-monitor configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Thresholds ThresholdConfig  `toml:"thresholds"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	// UserDataFile is the JSON file holding saved user profiles. Relative
	// paths resolve against the working directory.
	UserDataFile string `toml:"user_data_file"`
}

// ThresholdConfig holds the default glucose category boundaries in mg/dL.
type ThresholdConfig struct {
	Low  int `toml:"low"`
	High int `toml:"high"`
}

// AppearanceConfig holds window settings.
type AppearanceConfig struct {
	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			UserDataFile: "user_info.json",
		},
		Thresholds: ThresholdConfig{
			Low:  70,
			High: 180,
		},
		Appearance: AppearanceConfig{
			WindowWidth:  900,
			WindowHeight: 700,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glucose-monitor")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "glucose-monitor")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a config file from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}
