// Package texture synthesizes the pixel maps that dress the pie when no
// photograph is supplied: the crust (height, color, roughness, normal and
// ambient occlusion), the cut-face filling and the checkered table cloth.
//
// Every synthesizer allocates its own buffers and draws randomness only from
// the noise.Source it is given, so independent calls can run concurrently and
// a fixed seed reproduces the output bit for bit.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/Faultbox/vasilopita/pkg/noise"
)

// Default resolutions.
const (
	SurfaceResolution = 1024
	FillingResolution = 512
	TileResolution    = 512
)

// ErrInvalidResolution is returned for zero or negative texture sizes.
var ErrInvalidResolution = errors.New("invalid texture resolution")

// WrapMode controls how a renderer samples outside [0, 1].
type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapRepeat
)

// Sampling tells the renderer how to wrap and repeat a synthesized map.
type Sampling struct {
	WrapU, WrapV     WrapMode
	RepeatU, RepeatV float64
}

func checkResolution(res int) error {
	if res <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidResolution, res)
	}
	return nil
}

func newGray(res int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, res, res))
}

func newRGBA(res int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, res, res))
}

// toRGBA quantizes a float color to 8-bit, fully opaque.
func toRGBA(c gg.RGBA) color.RGBA {
	return color.RGBA{
		R: noise.Clamp255(c.R*255 + 0.5),
		G: noise.Clamp255(c.G*255 + 0.5),
		B: noise.Clamp255(c.B*255 + 0.5),
		A: 255,
	}
}

// rgb8 builds a float color from byte components.
func rgb8(r, g, b uint8) gg.RGBA {
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// jitterRGBA adds independent uniform noise in [-amp, amp) to each channel.
func jitterRGBA(c color.RGBA, amp float64, src noise.Source) color.RGBA {
	return color.RGBA{
		R: noise.Clamp255(float64(c.R) + noise.Jitter(src, amp)),
		G: noise.Clamp255(float64(c.G) + noise.Jitter(src, amp)),
		B: noise.Clamp255(float64(c.B) + noise.Jitter(src, amp)),
		A: 255,
	}
}

// ParseColor reads a "#RRGGBB" style hex color.
func ParseColor(hex string) color.RGBA {
	return toRGBA(gg.Hex(hex))
}
