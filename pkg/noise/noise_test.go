package noise

import (
	"image"
	"math"
	"testing"
)

func TestTrig2DRange(t *testing.T) {
	for y := 0.0; y < 50; y += 0.37 {
		for x := 0.0; x < 50; x += 0.41 {
			v := Trig2D(x, y)
			if v < -1 || v > 1 {
				t.Fatalf("Trig2D(%v, %v) = %v, outside [-1, 1]", x, y, v)
			}
		}
	}
	if Trig2D(3, 4) != Trig2D(3, 4) {
		t.Error("Trig2D should be deterministic")
	}
}

func TestEdgeDip(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 1},
		{1, 1},
		{0.5, 0},
		{0.25, 0.125},
		{0.75, 0.125},
		{-0.3, 1}, // clamped
		{1.7, 1},
	}
	for _, tt := range tests {
		if got := EdgeDip(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EdgeDip(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestEdgeDipMonotonicTowardCenter(t *testing.T) {
	prev := EdgeDip(0)
	for i := 1; i <= 50; i++ {
		v := EdgeDip(float64(i) / 100)
		if v > prev {
			t.Fatalf("EdgeDip increased moving toward center at t=%v", float64(i)/100)
		}
		prev = v
	}
}

func TestSmoothStep(t *testing.T) {
	if SmoothStep(0, 1, -1) != 0 || SmoothStep(0, 1, 2) != 1 {
		t.Error("SmoothStep should clamp outside the edges")
	}
	if got := SmoothStep(0, 1, 0.5); got != 0.5 {
		t.Errorf("SmoothStep(0.5) = %v, want 0.5", got)
	}
	if Fade(0) != 0 || Fade(1) != 1 {
		t.Error("Fade endpoints should be 0 and 1")
	}
}

func TestClamp255(t *testing.T) {
	if Clamp255(-5) != 0 || Clamp255(300) != 255 || Clamp255(12.7) != 12 {
		t.Error("Clamp255 mismatch")
	}
}

func TestGradientClampsEdges(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	// Horizontal ramp 0, 10, 20
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.Pix[y*img.Stride+x] = uint8(x * 10)
		}
	}
	f := GrayField{img}

	dx, dy := Gradient(f, 1, 1)
	if dx != 20 || dy != 0 {
		t.Errorf("center gradient = (%v, %v), want (20, 0)", dx, dy)
	}

	// Left edge: left neighbour clamps to itself
	dx, _ = Gradient(f, 0, 0)
	if dx != 10 {
		t.Errorf("edge gradient dx = %v, want 10", dx)
	}
}

func TestSourceDeterminism(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("sources with the same seed diverged")
		}
	}
	if Derive(1, "height") == Derive(1, "filling") {
		t.Error("derived streams should differ")
	}
	if Jitter(Constant(0.5), 40) != 0 {
		t.Error("Constant(0.5) should disable jitter")
	}
}
