package texture

import (
	"image"
	"math"
	"time"

	"github.com/gogpu/gg"
	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/Faultbox/vasilopita/internal/logger"
	"github.com/Faultbox/vasilopita/pkg/noise"
)

// Height field shaping constants, in 0..255 units unless noted.
const (
	heightBase      = 128 // mid-gray starting elevation
	ridgeValue      = 220 // spiral stroke brightness
	heightNoise     = 40  // per-pixel uniform noise amplitude
	bandLow         = 150 // (bandLow, bandHigh) is pulled down
	bandHigh        = 200 // above bandHigh is pushed up
	bandPullDown    = 20
	bandPushUp      = 10
	spiralTurns     = 6
	spiralStep      = 0.01 // radians between stroke samples
	spiralFill      = 0.46 // outer spiral radius as a fraction of resolution
	spiralWidth     = 18   // stroke width at 1024px
	spiralSoftening = 6    // blur factor applied to the stroke
)

// SynthesizeHeight draws the crust elevation field: a mid-gray base with a
// soft, bright spiral ridge whose radius wobbles by 10*sin(10a) + 5*cos(23a),
// then heavy per-pixel noise and a banding curve that tears the ridge edges.
func SynthesizeHeight(res int, src noise.Source) (*image.Gray, error) {
	if err := checkResolution(res); err != nil {
		return nil, err
	}
	start := time.Now()

	field, err := drawSpiral(res)
	if err != nil {
		return nil, err
	}

	for i, v := range field.Pix {
		h := float64(v) + noise.Jitter(src, heightNoise)
		switch {
		case h > bandLow && h < bandHigh:
			h -= bandPullDown
		case h > bandHigh:
			h += bandPushUp
		}
		field.Pix[i] = noise.Clamp255(h)
	}

	logger.Named("texture").Debug("synthesized height field",
		zap.Int("resolution", res),
		zap.Duration("took", time.Since(start)),
	)
	return field, nil
}

// drawSpiral strokes the ridge spiral on a gg canvas and returns it softened
// as a grayscale field.
func drawSpiral(res int) (*image.Gray, error) {
	dc := gg.NewContext(res, res)
	defer dc.Close()

	base := float64(heightBase) / 255
	dc.ClearWithColor(gg.RGB(base, base, base))

	scale := float64(res) / 1024
	cx, cy := float64(res)/2, float64(res)/2
	maxA := spiralTurns * 2 * math.Pi
	outer := float64(res) * spiralFill

	for a := 0.0; a <= maxA; a += spiralStep {
		r := spiralRadius(a, maxA, outer) + spiralDistortion(a)*scale
		x, y := cx+r*math.Cos(a), cy+r*math.Sin(a)
		if a == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}

	ridge := float64(ridgeValue) / 255
	dc.SetRGB(ridge, ridge, ridge)
	dc.SetLineWidth(math.Max(1, spiralWidth*scale))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	if err := dc.Stroke(); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}

	img := dc.Image()
	gray := image.NewGray(img.Bounds())
	draw.Draw(gray, gray.Bounds(), img, img.Bounds().Min, draw.Src)
	return Blur(gray, max(1, spiralSoftening*res/1024)), nil
}

// spiralRadius grows slightly faster than linearly near the center and
// flattens toward the rim.
func spiralRadius(a, maxA, outer float64) float64 {
	return outer * math.Pow(a/maxA, 0.85)
}

func spiralDistortion(a float64) float64 {
	return 10*math.Sin(10*a) + 5*math.Cos(23*a)
}
