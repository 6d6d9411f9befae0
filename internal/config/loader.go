package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCave loads the cave editor configuration.
// Search order: customPath -> ~/.cavern/configs/cave.yaml ->
// ./configs/cave.yaml -> embedded default.
func LoadCave(customPath string) (CaveConfig, error) {
	var cfg CaveConfig

	// Custom path is authoritative: failures there are reported, not
	// silently skipped.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cave.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cave.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCaveYAML, &cfg); err != nil {
		return DefaultCaveConfig(), nil
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cavern", "configs", filename)
}

// normalize fills in zero values a partial config file may leave behind.
func normalize(cfg CaveConfig) CaveConfig {
	def := DefaultCaveConfig()

	if cfg.World.Width <= 0 {
		cfg.World.Width = def.World.Width
	}
	if cfg.World.Height <= 0 {
		cfg.World.Height = def.World.Height
	}
	if cfg.Generator.FillProbability <= 0 {
		cfg.Generator.FillProbability = def.Generator.FillProbability
	}
	if cfg.Generator.CarveRatio <= 0 {
		cfg.Generator.CarveRatio = def.Generator.CarveRatio
	}
	if cfg.Timing.StepMillis <= 0 {
		cfg.Timing.StepMillis = def.Timing.StepMillis
	}
	if cfg.Display.WallGlyph == "" {
		cfg.Display.WallGlyph = def.Display.WallGlyph
	}
	if cfg.Display.OpenGlyph == "" {
		cfg.Display.OpenGlyph = def.Display.OpenGlyph
	}
	return cfg
}
