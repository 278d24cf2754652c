package fortune

import (
	"slices"
	"testing"

	"github.com/Faultbox/vasilopita/pkg/noise"
)

func TestDealLength(t *testing.T) {
	pool := []string{"a", "b", "c"}
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 0},
		{"negative", -2, 0},
		{"fewer than pool", 2, 2},
		{"exact", 3, 3},
		{"cycles", 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Deal(pool, tt.n, noise.NewSource(1)); len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDealCycles(t *testing.T) {
	pool := []string{"a", "b", "c"}
	got := Deal(pool, 7, noise.NewSource(5))
	for i := 3; i < len(got); i++ {
		if got[i] != got[i-3] {
			t.Fatalf("entry %d = %q, want repeat of %q", i, got[i], got[i-3])
		}
	}
	first := slices.Clone(got[:3])
	slices.Sort(first)
	if !slices.Equal(first, pool) {
		t.Errorf("first round %v is not a permutation of %v", got[:3], pool)
	}
}

func TestDealDoesNotModifyPool(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	before := slices.Clone(pool)
	Deal(pool, 4, noise.NewSource(9))
	if !slices.Equal(pool, before) {
		t.Errorf("pool changed to %v", pool)
	}
}

func TestDealDeterministic(t *testing.T) {
	a := Deal(nil, len(Defaults), noise.NewSource(2026))
	b := Deal(nil, len(Defaults), noise.NewSource(2026))
	if !slices.Equal(a, b) {
		t.Error("same seed dealt different fortunes")
	}
	sorted := slices.Clone(a)
	slices.Sort(sorted)
	want := slices.Clone(Defaults)
	slices.Sort(want)
	if !slices.Equal(sorted, want) {
		t.Error("empty pool should deal from Defaults")
	}
}

func TestCoinIndex(t *testing.T) {
	tests := []struct {
		n    int
		src  noise.Source
		want int
	}{
		{8, noise.Constant(0), 0},
		{8, noise.Constant(0.5), 4},
		{8, noise.Constant(0.9999999), 7},
		{8, noise.Constant(1), 7},
		{0, noise.Constant(0.5), -1},
	}
	for _, tt := range tests {
		if got := CoinIndex(tt.n, tt.src); got != tt.want {
			t.Errorf("CoinIndex(%d, %v) = %d, want %d", tt.n, tt.src, got, tt.want)
		}
	}
}

func TestCoinIndexInRange(t *testing.T) {
	src := noise.NewSource(3)
	for range 1000 {
		if i := CoinIndex(5, src); i < 0 || i >= 5 {
			t.Fatalf("CoinIndex = %d, out of range", i)
		}
	}
}
