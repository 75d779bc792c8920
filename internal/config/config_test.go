package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GridSize != 6 {
		t.Errorf("expected grid size 6, got %d", cfg.GridSize)
	}
	if cfg.FlipMs <= 0 || cfg.MismatchMs <= 0 {
		t.Error("timing defaults should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfig_Rules(t *testing.T) {
	cfg := DefaultConfig()
	rules := cfg.Rules()
	if rules.FlipDuration != 0.2 {
		t.Errorf("flip duration: got %f, want 0.2", rules.FlipDuration)
	}
	if rules.MismatchDelay != 1.0 {
		t.Errorf("mismatch delay: got %f, want 1.0", rules.MismatchDelay)
	}
	if rules.WinDelay != 1.0 {
		t.Errorf("win delay: got %f, want 1.0", rules.WinDelay)
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memmatch.yaml")

	cfg := DefaultConfig()
	cfg.GridSize = 4
	cfg.Window.Width = 1024
	cfg.Theme.Accent = "#00FF00"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.GridSize != 4 || loaded.Window.Width != 1024 {
		t.Errorf("round trip lost values: grid=%d width=%d", loaded.GridSize, loaded.Window.Width)
	}
	if loaded.Theme.Accent != "#00FF00" {
		t.Errorf("round trip lost theme: %s", loaded.Theme.Accent)
	}
	// Unset fields keep their defaults.
	if loaded.FlipMs != DefaultFlipMs {
		t.Errorf("expected default flip_ms, got %d", loaded.FlipMs)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("grid_size: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GridSize != 4 {
		t.Errorf("expected grid size 4, got %d", cfg.GridSize)
	}
	if cfg.Window.Width != DefaultWidth || cfg.Theme.Background != "#0A1128" {
		t.Error("unset fields should keep defaults")
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"grid size 5", func(c *Config) { c.GridSize = 5 }},
		{"zero flip", func(c *Config) { c.FlipMs = 0 }},
		{"negative mismatch", func(c *Config) { c.MismatchMs = -1 }},
		{"tiny window", func(c *Config) { c.Window.Width = 100 }},
		{"bad color", func(c *Config) { c.Theme.Accent = "gold" }},
		{"zero fps", func(c *Config) { c.Window.FPS = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
