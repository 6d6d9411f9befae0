// Package config provides YAML-based configuration loading for the cave
// editor: world dimensions, generator parameters, step timing and glyphs.
package config

// CaveConfig contains all configuration for the cave editor.
type CaveConfig struct {
	World     WorldConfig     `yaml:"world"`
	Generator GeneratorConfig `yaml:"generator"`
	Timing    TimingConfig    `yaml:"timing"`
	Display   DisplayConfig   `yaml:"display"`
}

// WorldConfig defines the fixed world grid dimensions.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GeneratorConfig defines the parameters of the two procedural generators.
type GeneratorConfig struct {
	// FillProbability is the per-cell wall probability of the random fill.
	FillProbability float64 `yaml:"fill_probability"`
	// CarveRatio is the fraction of the world the drunk walk opens up.
	CarveRatio float64 `yaml:"carve_ratio"`
}

// TimingConfig defines the autonomous step cadence.
type TimingConfig struct {
	// StepMillis is the interval between autonomous simulation steps
	// while the editor is running.
	StepMillis int `yaml:"step_millis"`
}

// DisplayConfig defines the glyphs used for cells. Each cell is drawn two
// characters wide so the map looks square in a terminal.
type DisplayConfig struct {
	WallGlyph string `yaml:"wall_glyph"`
	OpenGlyph string `yaml:"open_glyph"`
}
