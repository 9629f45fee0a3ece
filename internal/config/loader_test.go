package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/euartex/blockfit/internal/games/blockfit/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfit.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	cfg, err := parse(defaultBlockfitYAML)
	if err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}
	if want := DefaultBlockfitConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
rules:
  points_per_line: 50
palette:
  colors: [gold, blue]
display:
  ghost: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Rules.PointsPerLine != 50 {
		t.Errorf("PointsPerLine = %d, want 50", cfg.Rules.PointsPerLine)
	}
	if cfg.Rules.BlocksPerLevel != 10 {
		t.Errorf("BlocksPerLevel = %d, want default 10", cfg.Rules.BlocksPerLevel)
	}
	if cfg.Display.Ghost {
		t.Error("Ghost = true, want false")
	}
	if !cfg.Display.ShowInstructions {
		t.Error("ShowInstructions should keep its default")
	}

	colors, err := cfg.Colors()
	if err != nil {
		t.Fatalf("Colors() error = %v", err)
	}
	if want := []engine.Color{engine.ColorGold, engine.ColorBlue}; !reflect.DeepEqual(colors, want) {
		t.Errorf("Colors() = %v, want %v", colors, want)
	}
	if got := cfg.EngineRules(); got != (engine.Rules{PointsPerLine: 50, BlocksPerLevel: 10}) {
		t.Errorf("EngineRules() = %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantErr: "failed to read config",
		},
		{
			name:    "broken yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "rules: [unclosed") },
			wantErr: "failed to parse config",
		},
		{
			name:    "zero points",
			path:    func(t *testing.T) string { return writeConfig(t, "rules:\n  points_per_line: 0\n") },
			wantErr: "points per line",
		},
		{
			name:    "unknown colour",
			path:    func(t *testing.T) string { return writeConfig(t, "palette:\n  colors: [red, mauve]\n") },
			wantErr: `unknown colour "mauve"`,
		},
		{
			name:    "empty palette",
			path:    func(t *testing.T) string { return writeConfig(t, "palette:\n  colors: []\n") },
			wantErr: "at least one colour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadWithoutCustomPathIsValid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBlockfitConfig()) {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".blockfit", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("rules:\n  blocks_per_level: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Rules.BlocksPerLevel != 4 {
		t.Errorf("BlocksPerLevel = %d, want 4 from user config", cfg.Rules.BlocksPerLevel)
	}
}
