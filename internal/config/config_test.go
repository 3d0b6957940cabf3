package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Thresholds.Low != 70 || cfg.Thresholds.High != 180 {
		t.Errorf("thresholds = %d/%d, want 70/180", cfg.Thresholds.Low, cfg.Thresholds.High)
	}
	if cfg.General.UserDataFile != "user_info.json" {
		t.Errorf("UserDataFile = %q, want user_info.json", cfg.General.UserDataFile)
	}
}

func TestLoadFrom_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[thresholds]\nlow = 80\nhigh = 160\n\n[general]\nuser_data_file = \"profiles.json\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Thresholds.Low != 80 || cfg.Thresholds.High != 160 {
		t.Errorf("thresholds = %d/%d, want 80/160", cfg.Thresholds.Low, cfg.Thresholds.High)
	}
	if cfg.General.UserDataFile != "profiles.json" {
		t.Errorf("UserDataFile = %q, want profiles.json", cfg.General.UserDataFile)
	}
	// Untouched sections keep defaults.
	if cfg.Appearance.WindowWidth != 900 {
		t.Errorf("WindowWidth = %v, want 900", cfg.Appearance.WindowWidth)
	}
}

func TestLoadFrom_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[thresholds\nlow = "), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error for malformed config")
	}
}
