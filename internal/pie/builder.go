package pie

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vasilopita/internal/logger"
	gomath "github.com/Faultbox/vasilopita/pkg/math"
)

// Build creates one placed, UV-mapped wedge per slice.
//
// A configuration whose gap swallows the slice angle is not an error: Build
// logs a warning and returns no slices, since the gap is a user-tunable value
// that a UI may sweep through. fortunes must hold at least cfg.SliceCount
// entries. Slice i gets fortunes[i]; the coin goes to the slice whose index
// equals coinIndex, and to no slice if coinIndex is out of range.
//
// Every call allocates fresh buffers; nothing is shared between calls or
// between the returned slices.
func Build(cfg DiscConfig, fortunes []string, coinIndex int) ([]*Slice, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.Named("pie")
	sliceAngle := cfg.SliceAngle()
	if sliceAngle <= 0 {
		log.Warn("slice angle is not positive, building no slices",
			zap.Int("slice_count", cfg.SliceCount),
			zap.Float64("gap_deg", cfg.GapDeg),
			zap.Float64("slice_angle", sliceAngle),
		)
		return nil, nil
	}

	if len(fortunes) < cfg.SliceCount {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughFortunes, len(fortunes), cfg.SliceCount)
	}

	start := time.Now()

	// Every slice has the same local shape; only placement and UVs differ.
	wedge := buildWedge(cfg, sliceAngle)
	local := deformTop(wedge.Vertices, cfg, sliceAngle)
	computeNormals(local, wedge.Indices)

	bounds := emptyBounds()
	for _, v := range local {
		updateBounds(&bounds, v.Position)
	}

	slices := make([]*Slice, 0, cfg.SliceCount)
	for i := 0; i < cfg.SliceCount; i++ {
		angle := cfg.PlacementAngle(i)
		slices = append(slices, &Slice{
			Index:     i,
			Fortune:   fortunes[i],
			HasCoin:   i == coinIndex,
			Angle:     angle,
			Span:      sliceAngle,
			Transform: placement(angle),
			Mesh: &Mesh{
				Vertices: assignUV(local, cfg, angle),
				Indices:  append([]uint32(nil), wedge.Indices...),
				Groups:   append([]MaterialGroup(nil), wedge.Groups...),
				Bounds:   bounds,
			},
		})
	}

	log.Debug("built disc",
		zap.Int("slices", len(slices)),
		zap.Int("vertices_per_slice", len(local)),
		zap.Int("coin_index", coinIndex),
		zap.Duration("took", time.Since(start)),
	)
	return slices, nil
}

// placement stands the extrusion axis up (+Z becomes +Y, the flat bottom
// rests at height 0) and then turns the wedge about the vertical axis.
func placement(angle float64) gomath.Mat4 {
	return gomath.RotateY(angle).Mul(gomath.RotateX(-math.Pi / 2))
}

func vertexXY(v Vertex) gomath.Vec2 {
	return gomath.V3(v.Position).XY()
}
