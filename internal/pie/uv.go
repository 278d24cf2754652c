package pie

// assignUV returns a copy of vertices with texture coordinates that place
// the slice inside one disc-wide texture. Each vertex's planar footprint is
// rotated by the slice's placement angle into disc space and mapped into the
// unit square around a reference radius of Radius*MapMargin. The height axis
// is ignored, so walls get the top texture projected straight down.
func assignUV(vertices []Vertex, cfg DiscConfig, placement float64) []Vertex {
	out := make([]Vertex, len(vertices))
	scale := 2 * cfg.MapRadius()
	for i, v := range vertices {
		g := vertexXY(v).Rotate(placement)
		out[i] = v
		out[i].TexCoord = [2]float32{
			float32(float64(g.X)/scale + 0.5),
			float32(float64(g.Y)/scale + 0.5),
		}
	}
	return out
}
