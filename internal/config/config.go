// Package config loads Blockfit's YAML configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/euartex/blockfit/internal/games/blockfit/engine"
)

// BlockfitConfig is the full game configuration.
type BlockfitConfig struct {
	Rules   RulesConfig   `yaml:"rules"`
	Palette PaletteConfig `yaml:"palette"`
	Display DisplayConfig `yaml:"display"`
}

// RulesConfig holds scoring and progression constants.
type RulesConfig struct {
	PointsPerLine  int `yaml:"points_per_line"`
	BlocksPerLevel int `yaml:"blocks_per_level"`
}

// PaletteConfig lists block colours by name.
type PaletteConfig struct {
	Colors           []string `yaml:"colors"`
	SpecialColors    []string `yaml:"special_colors"`
	SpecialFromLevel int      `yaml:"special_from_level"` // Only used by bonus mode
}

// DisplayConfig toggles presentation features.
type DisplayConfig struct {
	ShowInstructions bool `yaml:"show_instructions"` // How-to-play overlay at start
	Ghost            bool `yaml:"ghost"`             // Placement preview under the cursor
}

// EngineRules converts the rules section.
func (c BlockfitConfig) EngineRules() engine.Rules {
	return engine.Rules{
		PointsPerLine:  c.Rules.PointsPerLine,
		BlocksPerLevel: c.Rules.BlocksPerLevel,
	}
}

// Colors parses the regular palette.
func (c BlockfitConfig) Colors() ([]engine.Color, error) {
	return parseColors(c.Palette.Colors)
}

// SpecialColors parses the bonus palette.
func (c BlockfitConfig) SpecialColors() ([]engine.Color, error) {
	return parseColors(c.Palette.SpecialColors)
}

// Validate reports every invalid value at once.
func (c BlockfitConfig) Validate() error {
	var errs []error
	if err := c.EngineRules().Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Palette.Colors) == 0 {
		errs = append(errs, errors.New("palette: at least one colour is required"))
	}
	if _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SpecialColors(); err != nil {
		errs = append(errs, err)
	}
	if c.Palette.SpecialFromLevel < 1 {
		errs = append(errs, fmt.Errorf("palette: special_from_level must be positive, got %d", c.Palette.SpecialFromLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func parseColors(names []string) ([]engine.Color, error) {
	out := make([]engine.Color, 0, len(names))
	for _, name := range names {
		c, ok := engine.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("palette: unknown colour %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}
