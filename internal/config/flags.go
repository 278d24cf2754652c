package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSlices = flag.Int("slices", 0, "Number of slices")
	flagGap    = flag.Float64("gap", -1, "Gap between slices in degrees")
	flagSeed   = flag.Int64("seed", -1, "Seed for fortunes, coin and textures")
	flagOut    = flag.String("out", "", "Output directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSlices > 0 {
		cfg.Disc.SliceCount = *flagSlices
	}
	if *flagGap >= 0 {
		cfg.Disc.GapDeg = *flagGap
	}
	if *flagSeed >= 0 {
		cfg.Fortunes.Seed = uint64(*flagSeed)
		cfg.Textures.Seed = uint64(*flagSeed)
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
}
