package noise

import "image"

// Field is a read-only scalar grid addressed by integer pixel coordinates.
// *image.Gray satisfies it through the adapter in GrayField.
type Field interface {
	Size() (width, height int)
	Value(x, y int) float64
}

// Gradient estimates the horizontal and vertical derivatives of f at (x, y)
// using central differences. Neighbours outside the grid are clamped to the
// nearest valid pixel rather than wrapped.
func Gradient(f Field, x, y int) (dx, dy float64) {
	w, h := f.Size()
	left := f.Value(clampIndex(x-1, w), clampIndex(y, h))
	right := f.Value(clampIndex(x+1, w), clampIndex(y, h))
	up := f.Value(clampIndex(x, w), clampIndex(y-1, h))
	down := f.Value(clampIndex(x, w), clampIndex(y+1, h))
	return right - left, down - up
}

// GrayField exposes an 8-bit grayscale image as a Field in the 0..255 range.
type GrayField struct {
	*image.Gray
}

// Size implements Field.
func (g GrayField) Size() (int, int) {
	b := g.Bounds()
	return b.Dx(), b.Dy()
}

// Value implements Field.
func (g GrayField) Value(x, y int) float64 {
	b := g.Bounds()
	return float64(g.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
