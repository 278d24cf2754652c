// Package config handles pitagen configuration loading and management.
package config

import (
	"github.com/Faultbox/vasilopita/internal/fortune"
	"github.com/Faultbox/vasilopita/internal/pie"
	"github.com/Faultbox/vasilopita/internal/texture"
	"github.com/Faultbox/vasilopita/pkg/noise"
)

// Config holds all generator settings.
type Config struct {
	Disc     DiscConfig     `yaml:"disc"`
	Fortunes FortunesConfig `yaml:"fortunes"`
	Textures TexturesConfig `yaml:"textures"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DiscConfig holds the pie geometry.
type DiscConfig struct {
	SliceCount     int     `yaml:"slice_count"`
	Radius         float64 `yaml:"radius"`
	Height         float64 `yaml:"height"`
	GapDeg         float64 `yaml:"gap_deg"`
	EdgeDip        float64 `yaml:"edge_dip"`
	WobbleAmp      float64 `yaml:"wobble_amp"`
	ArcSegments    int     `yaml:"arc_segments"`
	RadialSegments int     `yaml:"radial_segments"`
	MapMargin      float64 `yaml:"map_margin"`
}

// FortunesConfig holds the fortune pool and coin placement.
type FortunesConfig struct {
	List []string `yaml:"list"` // Empty uses the built-in fortunes
	// CoinIndex fixes the coin slice. Unset draws it from Seed.
	CoinIndex *int   `yaml:"coin_index,omitempty"`
	Seed      uint64 `yaml:"seed"`
}

// TexturesConfig holds texture synthesis settings.
type TexturesConfig struct {
	SurfaceResolution int     `yaml:"surface_resolution"`
	FillingResolution int     `yaml:"filling_resolution"`
	TileResolution    int     `yaml:"tile_resolution"`
	TileSquares       int     `yaml:"tile_squares"`
	TileColor1        string  `yaml:"tile_color1"` // "#RRGGBB"
	TileColor2        string  `yaml:"tile_color2"`
	TileRepeat        float64 `yaml:"tile_repeat"`
	Seed              uint64  `yaml:"seed"`
}

// OutputConfig holds where generated files go.
type OutputConfig struct {
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"` // Base name of the OBJ and MTL files
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	disc := pie.DefaultDiscConfig()
	return &Config{
		Disc: DiscConfig{
			SliceCount:     disc.SliceCount,
			Radius:         disc.Radius,
			Height:         disc.Height,
			GapDeg:         disc.GapDeg,
			EdgeDip:        disc.EdgeDip,
			WobbleAmp:      disc.WobbleAmp,
			ArcSegments:    disc.ArcSegments,
			RadialSegments: disc.RadialSegments,
			MapMargin:      disc.MapMargin,
		},
		Fortunes: FortunesConfig{
			Seed: 1,
		},
		Textures: TexturesConfig{
			SurfaceResolution: texture.SurfaceResolution,
			FillingResolution: texture.FillingResolution,
			TileResolution:    texture.TileResolution,
			TileSquares:       8,
			TileColor1:        "#f6eede",
			TileColor2:        "#b02a26",
			TileRepeat:        4,
			Seed:              1,
		},
		Output: OutputConfig{
			Dir:  "out",
			Name: "vasilopita",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// PieConfig converts the disc section for pie.Build.
func (c *Config) PieConfig() pie.DiscConfig {
	d := c.Disc
	return pie.DiscConfig{
		SliceCount:     d.SliceCount,
		Radius:         d.Radius,
		Height:         d.Height,
		GapDeg:         d.GapDeg,
		EdgeDip:        d.EdgeDip,
		WobbleAmp:      d.WobbleAmp,
		ArcSegments:    d.ArcSegments,
		RadialSegments: d.RadialSegments,
		MapMargin:      d.MapMargin,
	}
}

// BundleOptions converts the textures section for texture.SynthesizeBundle.
func (c *Config) BundleOptions() texture.BundleOptions {
	t := c.Textures
	opts := texture.DefaultBundleOptions(t.Seed)
	opts.SurfaceResolution = t.SurfaceResolution
	opts.FillingResolution = t.FillingResolution
	opts.Tile.Resolution = t.TileResolution
	opts.Tile.Squares = t.TileSquares
	opts.Tile.Repeat = t.TileRepeat
	if t.TileColor1 != "" {
		opts.Tile.Color1 = texture.ParseColor(t.TileColor1)
	}
	if t.TileColor2 != "" {
		opts.Tile.Color2 = texture.ParseColor(t.TileColor2)
	}
	return opts
}

// Deal returns the fortunes and coin index for the configured disc.
// Both are drawn from Fortunes.Seed so a config reproduces the same pie.
func (c *Config) Deal() (fortunes []string, coinIndex int) {
	f := c.Fortunes
	src := noise.NewSource(f.Seed)
	fortunes = fortune.Deal(f.List, c.Disc.SliceCount, src)
	if f.CoinIndex != nil {
		return fortunes, *f.CoinIndex
	}
	return fortunes, fortune.CoinIndex(c.Disc.SliceCount, src)
}
