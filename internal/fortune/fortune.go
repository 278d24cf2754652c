// Package fortune deals the messages baked into each slice and picks the
// slice that hides the coin.
package fortune

import "github.com/Faultbox/vasilopita/pkg/noise"

// Defaults is the stock set of fortunes used when the configuration lists none.
var Defaults = []string{
	"Health all year long",
	"A journey across the sea",
	"Love knocks on your door",
	"Luck in every venture",
	"A new friend arrives",
	"Your house fills with guests",
	"Success in your studies",
	"Money finds its way to you",
	"Peace and quiet at home",
	"A wish comes true",
	"Good news in spring",
	"A promotion at work",
}

// Deal returns n fortunes drawn from pool. The pool is shuffled once and
// then repeated in order when n exceeds its length. An empty pool falls back
// to Defaults. pool itself is never modified.
func Deal(pool []string, n int, src noise.Source) []string {
	if n <= 0 {
		return nil
	}
	if len(pool) == 0 {
		pool = Defaults
	}

	deck := make([]string, len(pool))
	copy(deck, pool)
	shuffle(deck, src)

	out := make([]string, n)
	for i := range out {
		out[i] = deck[i%len(deck)]
	}
	return out
}

// CoinIndex picks the slice that hides the coin, uniformly in [0, n).
// It returns -1 when n is not positive, which Build treats as no coin.
func CoinIndex(n int, src noise.Source) int {
	if n <= 0 {
		return -1
	}
	return pick(n, src)
}

// shuffle is a Fisher-Yates shuffle driven by src.
func shuffle(s []string, src noise.Source) {
	for i := len(s) - 1; i > 0; i-- {
		j := pick(i+1, src)
		s[i], s[j] = s[j], s[i]
	}
}

// pick maps one draw onto [0, n).
func pick(n int, src noise.Source) int {
	return min(int(src.Float64()*float64(n)), n-1)
}
