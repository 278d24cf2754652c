package texture

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"github.com/Faultbox/vasilopita/internal/logger"
	"github.com/Faultbox/vasilopita/pkg/noise"
)

// SurfaceMaps are the crust maps derived from one height field. All maps
// share the height field's resolution and pixel indexing.
type SurfaceMaps struct {
	Height           *image.Gray
	Color            *image.RGBA
	Roughness        *image.Gray
	Normal           *image.RGBA
	AmbientOcclusion *image.Gray
	Sampling         Sampling
}

// Crust palette, from the lowest elevation band to the highest.
var (
	crustAmber     = rgb8(122, 62, 18)
	crustBrown     = rgb8(168, 98, 36)
	crustGold      = rgb8(222, 164, 62)
	crustCream     = rgb8(248, 224, 170)
	crustHighlight = color.RGBA{R: 255, G: 247, B: 228, A: 255}
)

const (
	burnChance    = 0.008
	normalDZ      = 255
	normalGain    = 2
	roughnessBase = 0.9
	roughnessSpan = 0.5
	aoSoftening   = 16
)

// SynthesizeSurface builds a height field and derives the crust maps from it.
func SynthesizeSurface(res int, src noise.Source) (*SurfaceMaps, error) {
	height, err := SynthesizeHeight(res, src)
	if err != nil {
		return nil, err
	}
	return DeriveMaps(height, src)
}

// DeriveMaps computes color, roughness, normal and ambient occlusion maps
// from height. src drives the burnt-spot placement.
func DeriveMaps(height *image.Gray, src noise.Source) (*SurfaceMaps, error) {
	b := height.Bounds()
	if b.Dx() <= 0 || b.Dx() != b.Dy() {
		return nil, fmt.Errorf("%w: height field is %dx%d", ErrInvalidResolution, b.Dx(), b.Dy())
	}
	start := time.Now()
	res := b.Dx()
	field := noise.GrayField{Gray: height}

	maps := &SurfaceMaps{
		Height:    height,
		Color:     newRGBA(res),
		Roughness: newGray(res),
		Normal:    newRGBA(res),
		Sampling:  Sampling{WrapU: WrapClamp, WrapV: WrapClamp, RepeatU: 1, RepeatV: 1},
	}

	for y := 0; y < res; y++ {
		for x := 0; x < res; x++ {
			h := field.Value(x, y)

			maps.Color.SetRGBA(x, y, crustColor(h, src))
			maps.Roughness.SetGray(x, y, color.Gray{Y: noise.Clamp255(Roughness(h) * 255)})

			dx, dy := noise.Gradient(field, x, y)
			maps.Normal.SetRGBA(x, y, encodeNormal(dx*normalGain, dy*normalGain, normalDZ))
		}
	}

	// Higher ground reads brighter, which the renderer treats as less occluded.
	maps.AmbientOcclusion = Blur(height, max(2, aoSoftening*res/1024))

	logger.Named("texture").Debug("derived surface maps",
		zap.Int("resolution", res),
		zap.Duration("took", time.Since(start)),
	)
	return maps, nil
}

// crustColor maps elevation h in 0..255 onto the banded crust gradient and
// occasionally burns the pixel.
func crustColor(h float64, src noise.Source) color.RGBA {
	var c gg.RGBA
	switch {
	case h < 80:
		c = crustAmber.Lerp(crustBrown, h/80)
	case h < 180:
		c = crustBrown.Lerp(crustGold, (h-80)/100)
	default:
		c = crustGold.Lerp(crustCream, noise.Clamp((h-180)/75, 0, 1))
	}
	out := toRGBA(c)
	if h > 240 {
		out = crustHighlight
	}
	if src.Float64() < burnChance {
		out.R = uint8(float64(out.R) * 0.5)
		out.G = uint8(float64(out.G) * 0.5)
		out.B = uint8(float64(out.B) * 0.4)
	}
	return out
}

// Roughness is the linear inverse map from elevation to roughness: raised,
// egg-washed crust is shinier than the troughs.
func Roughness(h float64) float64 {
	return roughnessBase - (h/255)*roughnessSpan
}

// encodeNormal normalizes (dx, dy, dz) and packs it into RGB as (n*0.5+0.5)*255.
func encodeNormal(dx, dy, dz float64) color.RGBA {
	l := math.Sqrt(dx*dx + dy*dy + dz*dz)
	nx, ny, nz := dx/l, dy/l, dz/l
	return color.RGBA{
		R: noise.Clamp255((nx*0.5 + 0.5) * 255),
		G: noise.Clamp255((ny*0.5 + 0.5) * 255),
		B: noise.Clamp255((nz*0.5 + 0.5) * 255),
		A: 255,
	}
}
