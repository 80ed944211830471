package candle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteAverage recomputes the threshold for scan index i from scratch.
func bruteAverage(b Bars, s Setting, offset, i int) float64 {
	bar := i - offset
	var avg float64
	if s.Period == 0 {
		avg = b.Range(s.RangeType, bar)
	} else {
		for j := bar - s.Period; j < bar; j++ {
			avg += b.Range(s.RangeType, j)
		}
		avg /= float64(s.Period)
	}
	if s.RangeType == Shadows {
		avg /= 2
	}
	return s.Factor * avg
}

func TestAccumulator_MatchesBruteForce(t *testing.T) {
	b := randomWalk(42, 250).bars()

	tests := []struct {
		name    string
		setting Setting
		offset  int
	}{
		{"body long", Setting{10, RealBody, 1.0}, 0},
		{"near offset 2", Setting{5, HighLow, 0.2}, 2},
		{"shadows", Setting{10, Shadows, 1.0}, 1},
		{"zero period", Setting{0, RealBody, 2.0}, 0},
		{"long window", Setting{37, HighLow, 0.6}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := tt.setting.Period + tt.offset
			acc := NewAccumulator(b, tt.setting, tt.offset)
			acc.Prime(start)

			for i := start; i < b.Len(); i++ {
				require.InDelta(t, bruteAverage(b, tt.setting, tt.offset, i), acc.Average(), 1e-9, "scan index %d", i)
				acc.Roll()
			}
		})
	}
}

func TestAccumulator_Window(t *testing.T) {
	b := filler(20).bars()
	acc := NewAccumulator(b, Setting{5, HighLow, 0.2}, 1)
	acc.Prime(8)

	first, last := acc.Window()
	assert.Equal(t, 2, first)
	assert.Equal(t, 6, last)
	assert.Equal(t, 2, acc.TrailingIndex())
	assert.InDelta(t, 3.5, acc.Sum(), 1e-12)
	assert.InDelta(t, 0.14, acc.Average(), 1e-12)

	acc.Roll()
	first, last = acc.Window()
	assert.Equal(t, 3, first)
	assert.Equal(t, 7, last)
}

func TestAccumulator_ZeroPeriodUsesJudgedBar(t *testing.T) {
	var s ohlc
	s.add(10, 11, 9, 10.5)
	s.add(10, 10.2, 9.9, 12)
	b := s.bars()

	acc := NewAccumulator(b, Setting{0, RealBody, 1.0}, 0)
	acc.Prime(0)
	assert.Equal(t, 0.5, acc.Average())
	first, last := acc.Window()
	assert.Greater(t, first, last)

	acc.Roll()
	assert.Equal(t, 2.0, acc.Average())
	assert.Zero(t, acc.Sum())
}

func TestAccumulator_ShadowsAreHalved(t *testing.T) {
	var s ohlc
	s.add(10, 12, 9, 11) // upper 1, lower 1
	s.add(10, 12, 9, 11)
	b := s.bars()

	acc := NewAccumulator(b, Setting{1, Shadows, 1.0}, 0)
	acc.Prime(1)
	assert.Equal(t, 1.0, acc.Average())
}
