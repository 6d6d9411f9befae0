package config

import (
	_ "embed"
)

//go:embed defaults/cave.yaml
var defaultCaveYAML []byte

// DefaultCaveConfig returns the built-in configuration, mirroring the
// embedded defaults/cave.yaml. Used as the last-resort fallback if the
// embedded file fails to parse.
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{
		World: WorldConfig{
			Width:  160,
			Height: 90,
		},
		Generator: GeneratorConfig{
			FillProbability: 0.45,
			CarveRatio:      0.4,
		},
		Timing: TimingConfig{
			StepMillis: 50,
		},
		Display: DisplayConfig{
			WallGlyph: "█",
			OpenGlyph: " ",
		},
	}
}
