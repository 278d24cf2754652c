package pie

import (
	"math"

	gomath "github.com/Faultbox/vasilopita/pkg/math"
	"github.com/Faultbox/vasilopita/pkg/noise"
)

// topEpsilon decides whether a vertex sits on the extrusion's top plane.
const topEpsilon = 1e-5

// deformTop returns a new vertex list where every vertex on the top plane
// droops toward the wedge's radial edges and carries a small positional
// wobble. Vertices below the top plane are copied unchanged. The input is
// never written to.
func deformTop(in []Vertex, cfg DiscConfig, sliceAngle float64) []Vertex {
	out := make([]Vertex, len(in))
	h := cfg.Height
	for i, v := range in {
		out[i] = v
		z := float64(v.Position[2])
		if math.Abs(z-h) > topEpsilon {
			continue
		}
		x, y := float64(v.Position[0]), float64(v.Position[1])
		out[i].Position[2] = float32(h - dipOffset(x, y, cfg.EdgeDip, sliceAngle) + wobbleOffset(x, y, cfg.WobbleAmp))
	}
	return out
}

// dipOffset is the downward displacement at in-plane point (x, y). The apex
// has no angle of its own; atan2 reports 0 there, so it droops like an edge.
func dipOffset(x, y, edgeDip, sliceAngle float64) float64 {
	theta := math.Atan2(y, x)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	t := noise.Clamp(theta/sliceAngle, 0, 1)
	return noise.EdgeDip(t) * edgeDip
}

func wobbleOffset(x, y, amp float64) float64 {
	return amp * math.Sin(3*x) * math.Cos(3*y)
}

// computeNormals replaces vertex normals with the normalized, area-weighted
// sum of the normals of the triangles that use each vertex. Caps and walls do
// not share vertices, so the crease between them stays sharp.
func computeNormals(vertices []Vertex, indices []uint32) {
	sums := make([]gomath.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		p0 := gomath.V3(vertices[a].Position)
		p1 := gomath.V3(vertices[b].Position)
		p2 := gomath.V3(vertices[c].Position)
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		sums[a] = sums[a].Add(n)
		sums[b] = sums[b].Add(n)
		sums[c] = sums[c].Add(n)
	}
	for i := range vertices {
		n := sums[i].Normalize()
		if n == (gomath.Vec3{}) {
			n = gomath.Vec3{Z: 1}
		}
		vertices[i].Normal = n.Array()
	}
}
