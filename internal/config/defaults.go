package config

import (
	_ "embed"
)

//go:embed defaults/blockfit.yaml
var defaultBlockfitYAML []byte

// DefaultBlockfitConfig returns the built-in configuration.
func DefaultBlockfitConfig() BlockfitConfig {
	return BlockfitConfig{
		Rules: RulesConfig{
			PointsPerLine:  100,
			BlocksPerLevel: 10,
		},
		Palette: PaletteConfig{
			Colors:           []string{"red", "blue", "green", "yellow", "purple"},
			SpecialColors:    []string{"gold", "bomb"},
			SpecialFromLevel: 3,
		},
		Display: DisplayConfig{
			ShowInstructions: true,
			Ghost:            true,
		},
	}
}
