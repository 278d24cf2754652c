package texture

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vasilopita/internal/logger"
	"github.com/Faultbox/vasilopita/pkg/noise"
)

// TileOptions configures the table cloth checkerboard.
type TileOptions struct {
	Resolution int
	Squares    int // squares per side
	Color1     color.RGBA
	Color2     color.RGBA
	// Repeat is how often the renderer tiles the texture across the table.
	// It does not change the generated pattern.
	Repeat float64
}

// DefaultTileOptions returns a red and cream 8x8 cloth.
func DefaultTileOptions() TileOptions {
	return TileOptions{
		Resolution: TileResolution,
		Squares:    8,
		Color1:     color.RGBA{R: 246, G: 238, B: 222, A: 255},
		Color2:     color.RGBA{R: 176, G: 42, B: 38, A: 255},
		Repeat:     4,
	}
}

// TileMap is the synthesized table cloth.
type TileMap struct {
	Color    *image.RGBA
	Sampling Sampling
}

const clothJitter = 10

// SynthesizeTile fills the background with Color1, paints every square whose
// (column + row) is even with Color2, then adds fabric grain.
func SynthesizeTile(opts TileOptions, src noise.Source) (*TileMap, error) {
	res := opts.Resolution
	if err := checkResolution(res); err != nil {
		return nil, err
	}
	if opts.Squares <= 0 || opts.Squares > res {
		return nil, fmt.Errorf("%w: %d squares across %d pixels", ErrInvalidResolution, opts.Squares, res)
	}
	start := time.Now()

	repeat := opts.Repeat
	if repeat <= 0 {
		repeat = 1
	}
	tile := &TileMap{
		Color:    newRGBA(res),
		Sampling: Sampling{WrapU: WrapRepeat, WrapV: WrapRepeat, RepeatU: repeat, RepeatV: repeat},
	}

	for y := 0; y < res; y++ {
		row := y * opts.Squares / res
		for x := 0; x < res; x++ {
			col := x * opts.Squares / res
			c := opts.Color1
			if (col+row)%2 == 0 {
				c = opts.Color2
			}
			tile.Color.SetRGBA(x, y, jitterRGBA(c, clothJitter, src))
		}
	}

	logger.Named("texture").Debug("synthesized tile",
		zap.Int("resolution", res),
		zap.Int("squares", opts.Squares),
		zap.Duration("took", time.Since(start)),
	)
	return tile, nil
}
