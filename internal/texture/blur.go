package texture

import (
	"image"

	"golang.org/x/image/draw"
)

// Blur returns a softened copy of src by resampling it down by factor with a
// bilinear kernel and back up with Catmull-Rom. Larger factors blur more.
// A factor of 1 or less returns an unmodified copy.
func Blur(src *image.Gray, factor int) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(b)
	if factor <= 1 {
		copy(out.Pix, src.Pix)
		return out
	}

	sw := max(1, b.Dx()/factor)
	sh := max(1, b.Dy()/factor)
	small := image.NewGray(image.Rect(0, 0, sw, sh))
	draw.BiLinear.Scale(small, small.Bounds(), src, b, draw.Src, nil)
	draw.CatmullRom.Scale(out, b, small, small.Bounds(), draw.Src, nil)
	return out
}
