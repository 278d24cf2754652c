// Package noise holds the stateless numeric helpers shared by the texture synthesizers:
// trigonometric 2D noise, easing curves, interpolation, clamping and
// finite-difference gradients over scalar fields.
package noise

import "math"

// Trig2D returns a smooth pseudo-noise value in [-1, 1] built from a sum of
// incommensurate sine and cosine waves. It is deterministic and needs no seed.
func Trig2D(x, y float64) float64 {
	v := math.Sin(x*1.7+y*0.3) * math.Cos(y*1.3-x*0.5)
	v += 0.5 * math.Sin(x*3.1+math.Cos(y*2.3))
	v += 0.25 * math.Cos(y*5.7+math.Sin(x*4.1))
	return v / 1.75
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp255 clamps v to the byte range and rounds toward zero.
func Clamp255(v float64) uint8 {
	return uint8(Clamp(v, 0, 255))
}

// SmoothStep is the Hermite easing 3t^2 - 2t^3 between edge0 and edge1.
func SmoothStep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Fade is the quintic 6t^5 - 15t^4 + 10t^3 curve.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// EdgeDip is the cubic falloff (1 - 2d)^3 where d is the normalized distance
// to the nearest edge. It is 1 on an edge and 0 halfway between edges.
func EdgeDip(t float64) float64 {
	t = Clamp(t, 0, 1)
	d := math.Min(t, 1-t)
	f := 1 - 2*d
	return f * f * f
}
