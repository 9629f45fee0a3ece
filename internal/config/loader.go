package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "blockfit.yaml"

// Load reads the Blockfit configuration.
// Search order: customPath -> ~/.blockfit/configs/blockfit.yaml ->
// ./configs/blockfit.yaml -> embedded default.
// Only a custom path reports read and parse failures; the other locations are
// skipped when missing or broken. The result is always validated.
func Load(customPath string) (BlockfitConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockfitConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BlockfitConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BlockfitConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultBlockfitYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultBlockfitConfig(), nil
	}
	return cfg, nil
}

// parse overlays YAML onto the built-in defaults, so partial files work.
func parse(data []byte) (BlockfitConfig, error) {
	cfg := DefaultBlockfitConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockfitConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns ~/.blockfit/configs/<filename>, or "" without a home.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfit", "configs", filename)
}
