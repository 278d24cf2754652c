package pie

import (
	"errors"
	"fmt"
	"math"

	gomath "github.com/Faultbox/vasilopita/pkg/math"
)

var (
	// ErrInvalidConfig is returned for a disc configuration that cannot describe a solid.
	ErrInvalidConfig = errors.New("invalid disc configuration")
	// ErrNotEnoughFortunes is returned when fewer fortunes than slices are supplied.
	ErrNotEnoughFortunes = errors.New("not enough fortunes for slice count")
)

// DefaultMapMargin enlarges the UV reference radius so every slice samples
// strictly inside the source photograph.
const DefaultMapMargin = 1.1

// DiscConfig describes the disc to build.
type DiscConfig struct {
	SliceCount int     // number of wedges, at least 2
	Radius     float64 // outer radius
	Height     float64 // extrusion depth
	GapDeg     float64 // angular gap between neighbouring wedges, degrees
	EdgeDip    float64 // crust droop at the wedge's radial edges
	WobbleAmp  float64 // amplitude of the sin/cos crust wobble

	// ArcSegments is the number of segments along the outer arc.
	ArcSegments int
	// RadialSegments is the number of rings from the apex to the rim.
	RadialSegments int
	// MapMargin scales Radius to get the UV reference radius.
	MapMargin float64
}

// DefaultDiscConfig returns the stock eight-slice pie.
func DefaultDiscConfig() DiscConfig {
	return DiscConfig{
		SliceCount:     8,
		Radius:         6,
		Height:         0.8,
		GapDeg:         1.0,
		EdgeDip:        0.2,
		WobbleAmp:      0.05,
		ArcSegments:    24,
		RadialSegments: 8,
		MapMargin:      DefaultMapMargin,
	}
}

// Validate rejects configurations that cannot describe a solid. A gap wide
// enough to consume the whole slice is not an error here; see SliceAngle.
func (c DiscConfig) Validate() error {
	switch {
	case c.SliceCount < 2:
		return fmt.Errorf("%w: slice count %d, need at least 2", ErrInvalidConfig, c.SliceCount)
	case !positive(c.Radius):
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidConfig, c.Radius)
	case !positive(c.Height):
		return fmt.Errorf("%w: height %v must be positive", ErrInvalidConfig, c.Height)
	case !nonNegative(c.GapDeg):
		return fmt.Errorf("%w: gap %v degrees must be non-negative", ErrInvalidConfig, c.GapDeg)
	case !nonNegative(c.EdgeDip):
		return fmt.Errorf("%w: edge dip %v must be non-negative", ErrInvalidConfig, c.EdgeDip)
	case !nonNegative(c.WobbleAmp):
		return fmt.Errorf("%w: wobble amplitude %v must be non-negative", ErrInvalidConfig, c.WobbleAmp)
	case c.ArcSegments < 1:
		return fmt.Errorf("%w: arc segments %d must be at least 1", ErrInvalidConfig, c.ArcSegments)
	case c.RadialSegments < 1:
		return fmt.Errorf("%w: radial segments %d must be at least 1", ErrInvalidConfig, c.RadialSegments)
	case !(c.MapMargin >= 1) || math.IsInf(c.MapMargin, 0):
		return fmt.Errorf("%w: map margin %v must be at least 1", ErrInvalidConfig, c.MapMargin)
	}
	return nil
}

// AnglePerSlice is the full angular share of one slice, gap included.
func (c DiscConfig) AnglePerSlice() float64 {
	return 2 * math.Pi / float64(c.SliceCount)
}

// GapRad is the gap angle in radians.
func (c DiscConfig) GapRad() float64 {
	return gomath.DegToRad(c.GapDeg)
}

// SliceAngle is the angular width of one wedge. A value <= 0 means the gap
// swallows the slice and nothing can be built.
func (c DiscConfig) SliceAngle() float64 {
	return c.AnglePerSlice() - c.GapRad()
}

// PlacementAngle is the rotation about the vertical axis for slice i.
func (c DiscConfig) PlacementAngle(i int) float64 {
	return -(float64(i)*c.AnglePerSlice() + c.GapRad()/2)
}

// MapRadius is the radius that maps to the UV unit square's inscribed circle.
func (c DiscConfig) MapRadius() float64 {
	return c.Radius * c.MapMargin
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
