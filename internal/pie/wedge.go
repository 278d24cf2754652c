package pie

import (
	gomath "github.com/Faultbox/vasilopita/pkg/math"
)

// buildWedge tessellates an undeformed wedge prism in slice-local space: the
// pie-slice outline (apex at the origin, arc of the disc radius spanning
// [0, sliceAngle]) lies in the XY plane and is extruded along +Z by the disc
// height. The caps are polar grids so the crust has interior vertices; the
// walls reuse the cap boundary samples so the solid stays closed after the
// top is deformed. Normals are left zero for computeNormals.
func buildWedge(cfg DiscConfig, sliceAngle float64) *Mesh {
	rings := cfg.RadialSegments
	segs := cfg.ArcSegments
	h := float32(cfg.Height)

	point := func(k, j int) gomath.Vec2 {
		r := cfg.Radius * float64(k) / float64(rings)
		return gomath.FromPolar(r, sliceAngle*float64(j)/float64(segs))
	}

	var vertices []Vertex
	var capIndices, wallIndices []uint32

	// Caps: apex first, then rings 1..rings with segs+1 samples each.
	addCap := func(z float32, top bool) {
		base := uint32(len(vertices))
		vertices = append(vertices, Vertex{Position: [3]float32{0, 0, z}})
		for k := 1; k <= rings; k++ {
			for j := 0; j <= segs; j++ {
				p := point(k, j)
				vertices = append(vertices, Vertex{Position: [3]float32{p.X, p.Y, z}})
			}
		}
		idx := func(k, j int) uint32 {
			if k == 0 {
				return base
			}
			return base + 1 + uint32((k-1)*(segs+1)+j)
		}
		tri := func(a, b, c uint32) {
			// Counter-clockwise seen from +Z for the top, reversed for the bottom.
			if top {
				capIndices = append(capIndices, a, b, c)
			} else {
				capIndices = append(capIndices, a, c, b)
			}
		}
		for j := 0; j < segs; j++ {
			tri(idx(0, 0), idx(1, j), idx(1, j+1))
		}
		for k := 1; k < rings; k++ {
			for j := 0; j < segs; j++ {
				a, b := idx(k, j), idx(k+1, j)
				c, d := idx(k+1, j+1), idx(k, j+1)
				tri(a, b, c)
				tri(a, c, d)
			}
		}
	}
	addCap(h, true)
	addCap(0, false)

	// Walls face the right-hand side of travel, so walking the outline
	// counter-clockwise gives outward normals.
	addWall := func(points []gomath.Vec2) {
		base := uint32(len(vertices))
		for _, p := range points {
			vertices = append(vertices,
				Vertex{Position: [3]float32{p.X, p.Y, 0}},
				Vertex{Position: [3]float32{p.X, p.Y, h}},
			)
		}
		for m := 0; m < len(points)-1; m++ {
			b0, t0 := base+uint32(2*m), base+uint32(2*m+1)
			b1, t1 := b0+2, t0+2
			wallIndices = append(wallIndices, b0, b1, t1, b0, t1, t0)
		}
	}

	startEdge := make([]gomath.Vec2, 0, rings+1)
	for k := 0; k <= rings; k++ {
		startEdge = append(startEdge, point(k, 0))
	}
	arc := make([]gomath.Vec2, 0, segs+1)
	for j := 0; j <= segs; j++ {
		arc = append(arc, point(rings, j))
	}
	endEdge := make([]gomath.Vec2, 0, rings+1)
	for k := rings; k >= 0; k-- {
		endEdge = append(endEdge, point(k, segs))
	}
	addWall(startEdge)
	addWall(arc)
	addWall(endEdge)

	indices := make([]uint32, 0, len(capIndices)+len(wallIndices))
	indices = append(indices, capIndices...)
	indices = append(indices, wallIndices...)

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Groups: []MaterialGroup{
			{Slot: SlotTop, StartIndex: 0, IndexCount: int32(len(capIndices))},
			{Slot: SlotSide, StartIndex: int32(len(capIndices)), IndexCount: int32(len(wallIndices))},
		},
	}
}
