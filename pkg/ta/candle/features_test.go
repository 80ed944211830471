package candle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBars_Features(t *testing.T) {
	var s ohlc
	s.add(10, 12, 9, 11)  // white
	s.add(11, 11.5, 8, 9) // black
	s.add(9, 9.5, 8.5, 9) // flat
	s.add(12, 13, 11.5, 12.5)
	b := s.bars()

	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 1.0, b.RealBody(0))
	assert.Equal(t, 1.0, b.UpperShadow(0))
	assert.Equal(t, 1.0, b.LowerShadow(0))
	assert.Equal(t, 3.0, b.HighLowRange(0))
	assert.Equal(t, 11.0, b.BodyTop(1))
	assert.Equal(t, 9.0, b.BodyBottom(1))

	assert.Equal(t, White, b.Color(0))
	assert.Equal(t, Black, b.Color(1))
	assert.Equal(t, Flat, b.Color(2))

	assert.Equal(t, 1.0, b.Range(RealBody, 0))
	assert.Equal(t, 3.0, b.Range(HighLow, 0))
	assert.Equal(t, 2.0, b.Range(Shadows, 0))
	assert.Equal(t, 1.5, b.Range(Shadows, 1))
}

func TestBars_Gaps(t *testing.T) {
	var s ohlc
	s.add(10, 11, 9, 10.5)
	s.add(11, 12.5, 10.8, 12) // body above bar 0 body, range overlaps
	s.add(13, 14, 12.6, 13.5) // trades entirely above bar 1
	b := s.bars()

	assert.True(t, b.RealBodyGapUp(1, 0))
	assert.False(t, b.CandleGapUp(1, 0))
	assert.True(t, b.CandleGapUp(2, 1))
	assert.True(t, b.RealBodyGapDown(0, 1))
	assert.True(t, b.CandleGapDown(1, 2))
	assert.False(t, b.RealBodyGapDown(1, 0))
}

func TestBars_OutOfRangeIndexPanics(t *testing.T) {
	b := filler(3).bars()

	assert.Panics(t, func() { b.Close(-1) })
	assert.Panics(t, func() { b.RealBody(3) })
	assert.NotPanics(t, func() { b.Color(2) })
}
