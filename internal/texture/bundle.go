package texture

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/vasilopita/pkg/noise"
)

// BundleOptions configures SynthesizeBundle.
type BundleOptions struct {
	SurfaceResolution int
	FillingResolution int
	Tile              TileOptions
	Seed              uint64
}

// DefaultBundleOptions returns the stock resolutions with the given seed.
func DefaultBundleOptions(seed uint64) BundleOptions {
	return BundleOptions{
		SurfaceResolution: SurfaceResolution,
		FillingResolution: FillingResolution,
		Tile:              DefaultTileOptions(),
		Seed:              seed,
	}
}

// Bundle holds every synthesized texture for one pie.
type Bundle struct {
	Surface *SurfaceMaps
	Filling *FillingMaps
	Tile    *TileMap
}

// SynthesizeBundle runs the surface, filling and tile synthesizers in
// parallel. Each gets its own random stream derived from opts.Seed, so the
// result does not depend on scheduling. A cancelled ctx stops synthesizers
// that have not started yet; one already running completes.
func SynthesizeBundle(ctx context.Context, opts BundleOptions) (*Bundle, error) {
	g, ctx := errgroup.WithContext(ctx)
	var out Bundle

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		m, err := SynthesizeSurface(opts.SurfaceResolution, noise.NewSource(noise.Derive(opts.Seed, "surface")))
		out.Surface = m
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		m, err := SynthesizeFilling(opts.FillingResolution, noise.NewSource(noise.Derive(opts.Seed, "filling")))
		out.Filling = m
		return err
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		m, err := SynthesizeTile(opts.Tile, noise.NewSource(noise.Derive(opts.Seed, "tile")))
		out.Tile = m
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
