package texture

import (
	"image"
	"image/color"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vasilopita/internal/logger"
	"github.com/Faultbox/vasilopita/pkg/noise"
)

// FillingMaps texture the cut faces: layered dough with cheese chunks and
// egg speckles. Bump is the per-pixel luminance of Color.
type FillingMaps struct {
	Color    *image.RGBA
	Bump     *image.Gray
	Sampling Sampling
}

var (
	fillingCream  = color.RGBA{R: 252, G: 244, B: 218, A: 255}
	fillingDough  = color.RGBA{R: 222, G: 188, B: 134, A: 255}
	fillingCheese = color.RGBA{R: 255, G: 253, B: 238, A: 255}
	fillingEgg    = color.RGBA{R: 246, G: 206, B: 72, A: 255}
)

const (
	doughBand     = 0.3 // wave values below this show a dough layer
	cheeseChance  = 0.2
	eggChance     = 0.1
	fillingJitter = 10
)

// fillingSampling repeats the filling more tightly along V, where the layers stack.
var fillingSampling = Sampling{WrapU: WrapRepeat, WrapV: WrapRepeat, RepeatU: 1, RepeatV: 4}

// FillingSampling returns the wrap and repeat the filling maps are drawn for.
func FillingSampling() Sampling {
	return fillingSampling
}

// SynthesizeFilling draws the cut-face texture.
func SynthesizeFilling(res int, src noise.Source) (*FillingMaps, error) {
	if err := checkResolution(res); err != nil {
		return nil, err
	}
	start := time.Now()

	maps := &FillingMaps{
		Color:    newRGBA(res),
		Bump:     newGray(res),
		Sampling: fillingSampling,
	}

	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			c := fillingCream
			if fillingWave(float64(x), float64(y)) < doughBand {
				c = fillingDough
			}

			r := src.Float64()
			switch {
			case r > 1-cheeseChance:
				c = fillingCheese
			case r < eggChance:
				c = fillingEgg
			}

			c = jitterRGBA(c, fillingJitter, src)
			maps.Color.SetRGBA(x, y, c)
			maps.Bump.SetGray(x, y, color.Gray{Y: luminance(c)})
		}
	}

	logger.Named("texture").Debug("synthesized filling",
		zap.Int("resolution", res),
		zap.Duration("took", time.Since(start)),
	)
	return maps, nil
}

// fillingWave is sin(y*0.1 + sin(x*0.05)*5) remapped to [0, 1].
func fillingWave(x, y float64) float64 {
	return math.Sin(y*0.1+math.Sin(x*0.05)*5)*0.5 + 0.5
}

func luminance(c color.RGBA) uint8 {
	return uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
}
