package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/decidiag/internal/decision"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Params != decision.DefaultParams() {
		t.Errorf("expected default params, got %v", cfg.Params)
	}
	if cfg.Figure.Width <= 0 || cfg.Figure.Height <= 0 {
		t.Error("figure size should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("trusting")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Params.P != 0.9 {
		t.Errorf("expected p 0.9, got %f", p.Params.P)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for name, p := range Presets {
		if err := p.Params.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if p.Params != p.Params.Snapped() {
			t.Errorf("preset %s is not on the slider steps: %v", name, p.Params)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ApplyPreset("costly"); err != nil {
		t.Fatal(err)
	}
	if cfg.Params.C != -20 {
		t.Errorf("expected c -20, got %v", cfg.Params.C)
	}
	if err := cfg.ApplyPreset("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decidiag.yaml")

	cfg := DefaultConfig()
	cfg.Params = decision.Params{P: 0.73, C: -4.5}
	cfg.Theme = "ocean"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Params != cfg.Params {
		t.Errorf("params: got %v, want %v", loaded.Params, cfg.Params)
	}
	if loaded.Theme != "ocean" {
		t.Errorf("theme: got %s", loaded.Theme)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("params:\n  p: 0.333\n  c: -10.3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Params.P != 0.33 || cfg.Params.C != -10.5 {
		t.Errorf("expected snapped params, got %v", cfg.Params)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("expected default addr, got %s", cfg.Server.Addr)
	}
}

func TestLoad_OutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("params:\n  p: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for p out of range")
	}
}

func TestLoadOver_KeepsBaseParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("theme: ocean\nparams:\n  p: 0.8\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := DefaultConfig()
	if err := base.ApplyPreset("costly"); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Params.P != 0.8 || cfg.Params.C != -20 {
		t.Errorf("expected p from file and c from preset, got %v", cfg.Params)
	}
	if cfg.Theme != "ocean" {
		t.Errorf("theme: got %s", cfg.Theme)
	}
	if base.Theme != DefaultTheme || base.Params.P != 0.5 {
		t.Errorf("base was modified: %+v", base)
	}
}
