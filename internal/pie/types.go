// Package pie builds the sliced disc: one extruded wedge solid per slice, with a
// drooping, wobbled top crust and a UV layout that lets every slice sample one
// shared disc texture.
package pie

import (
	gomath "github.com/Faultbox/vasilopita/pkg/math"
)

// Vertex represents a slice mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// MaterialSlot names the material a triangle range is drawn with.
type MaterialSlot int

const (
	// SlotTop is the crust material (top and bottom caps).
	SlotTop MaterialSlot = iota
	// SlotSide is the cut-face material (radial walls and outer rim).
	SlotSide
)

// String returns the slot name used by exporters.
func (s MaterialSlot) String() string {
	switch s {
	case SlotTop:
		return "top"
	case SlotSide:
		return "side"
	}
	return "unknown"
}

// MaterialGroup groups triangles by material slot for batched rendering.
type MaterialGroup struct {
	Slot       MaterialSlot
	StartIndex int32
	IndexCount int32
}

// Mesh holds the complete slice mesh data ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Groups   []MaterialGroup
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Slice is one wedge of the disc. The mesh is kept in slice-local space
// (shape in XY, extruded along +Z); Transform places it in the disc.
type Slice struct {
	Index   int
	Fortune string
	HasCoin bool

	// Angle is the rotation about the vertical axis applied at placement.
	Angle float64
	// Span is the angular width of the wedge in radians.
	Span float64

	Transform gomath.Mat4
	Mesh      *Mesh
}

// WorldMesh returns a copy of the slice mesh with Transform baked into
// positions and normals. Texture coordinates and groups are shared unchanged.
func (s *Slice) WorldMesh() *Mesh {
	if s.Mesh == nil {
		return nil
	}
	out := &Mesh{
		Vertices: make([]Vertex, len(s.Mesh.Vertices)),
		Indices:  s.Mesh.Indices,
		Groups:   s.Mesh.Groups,
		Bounds:   emptyBounds(),
	}
	for i, v := range s.Mesh.Vertices {
		pos := s.Transform.TransformPoint(v.Position)
		out.Vertices[i] = Vertex{
			Position: pos,
			Normal:   gomath.V3(s.Transform.TransformDirection(v.Normal)).Normalize().Array(),
			TexCoord: v.TexCoord,
		}
		updateBounds(&out.Bounds, pos)
	}
	return out
}

// Release drops the slice's geometry buffers. The slice must not be drawn afterwards.
func (s *Slice) Release() {
	s.Mesh = nil
}

// ReleaseAll releases every slice in a previously built disc.
func ReleaseAll(slices []*Slice) {
	for _, s := range slices {
		if s != nil {
			s.Release()
		}
	}
}

func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
