package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Method != DefaultMethod {
		t.Errorf("expected method %s, got %s", DefaultMethod, cfg.Method)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps should be positive")
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Method = "everhart_15"
	cfg.Problem = "exp"
	cfg.Steps = 42
	cfg.Everhart.Order = 15

	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Method != cfg.Method || loaded.Problem != cfg.Problem || loaded.Steps != cfg.Steps {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
	if loaded.Everhart.Order != 15 {
		t.Errorf("Everhart.Order = %d, want 15", loaded.Everhart.Order)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("scenario4_everhart15_exp")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Everhart.Order != 15 {
		t.Errorf("expected order 15, got %d", cfg.Everhart.Order)
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected at least one preset")
	}
}
