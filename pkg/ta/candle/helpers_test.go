package candle

import (
	"math"
	"math/rand"
)

type ohlc struct {
	open, high, low, close []float64
}

func (s ohlc) bars() Bars {
	return NewBars(s.open, s.high, s.low, s.close)
}

func (s *ohlc) add(o, h, l, c float64) {
	s.open = append(s.open, o)
	s.high = append(s.high, h)
	s.low = append(s.low, l)
	s.close = append(s.close, c)
}

// randomWalk builds a reproducible series with occasional gaps and dojis.
func randomWalk(seed int64, n int) ohlc {
	rng := rand.New(rand.NewSource(seed))
	var s ohlc
	price := 100.0
	for i := 0; i < n; i++ {
		open := price + (rng.Float64()-0.5)*2
		close := open + (rng.Float64()-0.5)*4
		if rng.Intn(10) == 0 {
			close = open
		}
		high := math.Max(open, close) + rng.Float64()*1.5
		low := math.Min(open, close) - rng.Float64()*1.5
		s.add(open, high, low, close)
		price = close
	}
	return s
}

// filler appends n bars alternating white and black with a 0.5 body and a
// 0.7 high-low range. Even indexes are white.
func filler(n int) ohlc {
	var s ohlc
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			s.add(10, 10.6, 9.9, 10.5)
		} else {
			s.add(10.5, 10.6, 9.9, 10)
		}
	}
	return s
}
