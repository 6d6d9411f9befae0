package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCaveEmbeddedDefault(t *testing.T) {
	// No custom path and (very likely) no user/local config in the test
	// environment: the embedded default must parse.
	cfg, err := LoadCave("")
	if err != nil {
		t.Fatalf("LoadCave(\"\") failed: %v", err)
	}

	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		t.Errorf("default world size invalid: %dx%d", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Generator.FillProbability <= 0 || cfg.Generator.FillProbability >= 1 {
		t.Errorf("default fill probability out of range: %v", cfg.Generator.FillProbability)
	}
	if cfg.Generator.CarveRatio <= 0 || cfg.Generator.CarveRatio >= 1 {
		t.Errorf("default carve ratio out of range: %v", cfg.Generator.CarveRatio)
	}
	if cfg.Timing.StepMillis != 50 {
		t.Errorf("default step interval = %d ms, expected 50", cfg.Timing.StepMillis)
	}
}

func TestLoadCaveCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cave.yaml")

	data := []byte("world:\n  width: 40\n  height: 30\ngenerator:\n  carve_ratio: 0.6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCave(path)
	if err != nil {
		t.Fatalf("LoadCave(%s) failed: %v", path, err)
	}

	if cfg.World.Width != 40 || cfg.World.Height != 30 {
		t.Errorf("world = %dx%d, expected 40x30", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Generator.CarveRatio != 0.6 {
		t.Errorf("carve ratio = %v, expected 0.6", cfg.Generator.CarveRatio)
	}

	// Unset fields fall back to defaults.
	if cfg.Generator.FillProbability != 0.45 {
		t.Errorf("fill probability = %v, expected default 0.45", cfg.Generator.FillProbability)
	}
	if cfg.Display.WallGlyph == "" {
		t.Error("wall glyph should fall back to default")
	}
}

func TestLoadCaveMissingCustomPath(t *testing.T) {
	_, err := LoadCave(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("missing custom config path should be an error")
	}
}
