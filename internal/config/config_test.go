package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/Faultbox/vasilopita/internal/pie"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Disc defaults match the builder's stock pie
	if got, want := cfg.PieConfig(), pie.DefaultDiscConfig(); got != want {
		t.Errorf("expected disc %+v, got %+v", want, got)
	}

	// Texture defaults
	if cfg.Textures.SurfaceResolution != 1024 {
		t.Errorf("expected surface resolution 1024, got %d", cfg.Textures.SurfaceResolution)
	}
	if cfg.Textures.FillingResolution != 512 {
		t.Errorf("expected filling resolution 512, got %d", cfg.Textures.FillingResolution)
	}
	if cfg.Textures.TileSquares != 8 {
		t.Errorf("expected 8 tile squares, got %d", cfg.Textures.TileSquares)
	}

	// Fortunes default to a drawn coin
	if cfg.Fortunes.CoinIndex != nil {
		t.Errorf("expected no fixed coin index, got %d", *cfg.Fortunes.CoinIndex)
	}

	if cfg.Output.Dir != "out" {
		t.Errorf("expected output dir 'out', got %s", cfg.Output.Dir)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
disc:
  slice_count: 12
  radius: 4.5
  gap_deg: 2

fortunes:
  list: ["health", "wealth"]
  coin_index: 5
  seed: 99

textures:
  surface_resolution: 256
  tile_color2: "#102030"
  seed: 7

output:
  dir: "build"
  name: "newyear"

logging:
  level: "debug"
  log_file: "pitagen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Disc.SliceCount != 12 {
		t.Errorf("expected 12 slices, got %d", cfg.Disc.SliceCount)
	}
	if cfg.Disc.Radius != 4.5 {
		t.Errorf("expected radius 4.5, got %v", cfg.Disc.Radius)
	}
	if cfg.Disc.GapDeg != 2 {
		t.Errorf("expected gap 2, got %v", cfg.Disc.GapDeg)
	}
	// Unset keys keep their defaults
	if cfg.Disc.Height != 0.8 {
		t.Errorf("expected default height 0.8, got %v", cfg.Disc.Height)
	}

	if !slices.Equal(cfg.Fortunes.List, []string{"health", "wealth"}) {
		t.Errorf("unexpected fortunes %v", cfg.Fortunes.List)
	}
	if cfg.Fortunes.CoinIndex == nil || *cfg.Fortunes.CoinIndex != 5 {
		t.Errorf("expected coin index 5, got %v", cfg.Fortunes.CoinIndex)
	}

	if cfg.Textures.SurfaceResolution != 256 {
		t.Errorf("expected surface resolution 256, got %d", cfg.Textures.SurfaceResolution)
	}
	if cfg.Textures.FillingResolution != 512 {
		t.Errorf("expected default filling resolution, got %d", cfg.Textures.FillingResolution)
	}

	opts := cfg.BundleOptions()
	if opts.Seed != 7 || opts.SurfaceResolution != 256 {
		t.Errorf("unexpected bundle options %+v", opts)
	}
	if want := (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}); opts.Tile.Color2 != want {
		t.Errorf("expected tile color2 %v, got %v", want, opts.Tile.Color2)
	}

	if cfg.Output.Dir != "build" || cfg.Output.Name != "newyear" {
		t.Errorf("unexpected output %+v", cfg.Output)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "pitagen.log" {
		t.Errorf("expected log file 'pitagen.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
disc:
  slice_count: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/vasilopita.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	// Keep a real user config from leaking into the test
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create vasilopita.yaml in current directory
	if err := os.WriteFile(FileName, []byte("disc:\n  slice_count: 6\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "slices flag",
			setup: func() {
				*flagSlices = 10
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Disc.SliceCount != 10 {
					t.Errorf("expected 10 slices, got %d", cfg.Disc.SliceCount)
				}
			},
			teardown: func() {
				*flagSlices = 0
			},
		},
		{
			name: "zero gap flag",
			setup: func() {
				*flagGap = 0
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Disc.GapDeg != 0 {
					t.Errorf("expected gap 0, got %v", cfg.Disc.GapDeg)
				}
			},
			teardown: func() {
				*flagGap = -1
			},
		},
		{
			name: "seed flag",
			setup: func() {
				*flagSeed = 0
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Fortunes.Seed != 0 || cfg.Textures.Seed != 0 {
					t.Errorf("expected both seeds 0, got %d and %d", cfg.Fortunes.Seed, cfg.Textures.Seed)
				}
			},
			teardown: func() {
				*flagSeed = -1
			},
		},
		{
			name: "out flag",
			setup: func() {
				*flagOut = "/tmp/pie"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Dir != "/tmp/pie" {
					t.Errorf("expected output /tmp/pie, got %s", cfg.Output.Dir)
				}
			},
			teardown: func() {
				*flagOut = ""
			},
		},
		{
			name:  "no flags",
			setup: func() {},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Disc.GapDeg != 1 || cfg.Fortunes.Seed != 1 {
					t.Errorf("defaults changed without flags: %+v", cfg.Disc)
				}
			},
			teardown: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
disc:
  slice_count: 6
  radius: 3
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagSlices = 9
	defer func() {
		*flagConfig = ""
		*flagSlices = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Slice count should be from flag (9), not file (6)
	if cfg.Disc.SliceCount != 9 {
		t.Errorf("expected 9 slices from flag, got %d", cfg.Disc.SliceCount)
	}

	// Radius should be from file (3) since no flag override
	if cfg.Disc.Radius != 3 {
		t.Errorf("expected radius 3 from file, got %v", cfg.Disc.Radius)
	}
}

func TestLoadRejectsInvalidDisc(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("disc:\n  radius: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, pie.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	coin := 3
	cfg.Fortunes.CoinIndex = &coin
	cfg.Fortunes.List = []string{"a", "b"}
	cfg.Disc.SliceCount = 5
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Disc != cfg.Disc {
		t.Errorf("disc %+v, want %+v", loaded.Disc, cfg.Disc)
	}
	if loaded.Fortunes.CoinIndex == nil || *loaded.Fortunes.CoinIndex != 3 {
		t.Errorf("coin index lost: %v", loaded.Fortunes.CoinIndex)
	}
	if loaded.Textures != cfg.Textures {
		t.Errorf("textures %+v, want %+v", loaded.Textures, cfg.Textures)
	}
}

func TestDeal(t *testing.T) {
	cfg := Default()
	fortunes, coin := cfg.Deal()
	if len(fortunes) != cfg.Disc.SliceCount {
		t.Fatalf("dealt %d fortunes, want %d", len(fortunes), cfg.Disc.SliceCount)
	}
	if coin < 0 || coin >= cfg.Disc.SliceCount {
		t.Errorf("coin index %d out of range", coin)
	}

	again, againCoin := cfg.Deal()
	if !slices.Equal(fortunes, again) || coin != againCoin {
		t.Error("same seed dealt a different pie")
	}

	fixed := 99
	cfg.Fortunes.CoinIndex = &fixed
	if _, got := cfg.Deal(); got != 99 {
		t.Errorf("fixed coin index = %d, want 99", got)
	}
}
