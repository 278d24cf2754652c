// pitagen builds a sliced fortune pie and its textures and writes them out
// as an OBJ scene with PNG maps.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vasilopita/internal/config"
	"github.com/Faultbox/vasilopita/internal/export"
	"github.com/Faultbox/vasilopita/internal/logger"
	"github.com/Faultbox/vasilopita/internal/pie"
	"github.com/Faultbox/vasilopita/internal/texture"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch command {
	case "slices":
		err = cmdSlices(cfg)
	case "textures":
		err = cmdTextures(ctx, cfg)
	case "all":
		if err = cmdTextures(ctx, cfg); err == nil {
			err = cmdSlices(cfg)
		}
	case "config":
		err = cmdConfig(cfg, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pitagen - fortune pie generator

Usage:
  pitagen [flags] <command>

Commands:
  slices           Build the sliced disc and write <name>.obj and <name>.mtl
  textures         Synthesize crust, filling and cloth maps as PNG files
  all              Run textures, then slices
  config [path]    Write the effective configuration (default: user config dir)

Flags:
  -config <file>   Config file (default: ./vasilopita.yaml or user config dir)
  -debug           Enable debug logging
  -slices <n>      Number of slices
  -gap <deg>       Gap between slices in degrees
  -seed <n>        Seed for fortunes, coin and textures
  -out <dir>       Output directory

Examples:
  pitagen all
  pitagen -slices 12 -gap 2 -out ./pie slices
  pitagen -seed 2027 textures
  pitagen config ./vasilopita.yaml`)
}

func cmdSlices(cfg *config.Config) error {
	fortunes, coin := cfg.Deal()

	slices, err := pie.Build(cfg.PieConfig(), fortunes, coin)
	if err != nil {
		return fmt.Errorf("building slices: %w", err)
	}
	defer pie.ReleaseAll(slices)

	if len(slices) == 0 {
		fmt.Println("No slices built: the gap leaves no room for a slice.")
		return nil
	}

	path, err := export.SaveDisc(cfg.Output.Dir, cfg.Output.Name, slices)
	if err != nil {
		return fmt.Errorf("writing disc: %w", err)
	}

	for _, s := range slices {
		marker := ""
		if s.HasCoin {
			marker = "  (coin)"
		}
		fmt.Printf("  slice %2d  %s%s\n", s.Index, s.Fortune, marker)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func cmdTextures(ctx context.Context, cfg *config.Config) error {
	start := time.Now()
	bundle, err := texture.SynthesizeBundle(ctx, cfg.BundleOptions())
	if err != nil {
		return fmt.Errorf("synthesizing textures: %w", err)
	}
	logger.Info("synthesized textures", zap.Duration("took", time.Since(start)))

	paths, err := export.NewImageWriter(cfg.Output.Dir).WriteBundle(bundle)
	if err != nil {
		return fmt.Errorf("writing textures: %w", err)
	}
	for _, p := range paths {
		fmt.Printf("Wrote %s\n", p)
	}
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), config.FileName))
		return nil
	}
	if err := cfg.SaveTo(args[0]); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("Wrote %s\n", args[0])
	return nil
}
