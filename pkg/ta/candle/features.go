package candle

import (
	"fmt"
	"math"
)

// Color is the direction of a bar.
type Color int

const (
	Black Color = -1
	Flat  Color = 0
	White Color = 1
)

// Bars is a read-only view over OHLC arrays. Every accessor checks the bar
// index, so a pattern reaching before the first bar or past the last one
// fails loudly instead of reading a neighbouring value.
type Bars struct {
	open  []float64
	high  []float64
	low   []float64
	close []float64
}

// NewBars wraps the four price arrays. They must have equal length.
func NewBars(open, high, low, close []float64) Bars {
	return Bars{open: open, high: high, low: low, close: close}
}

// Len returns the number of bars.
func (b Bars) Len() int {
	return len(b.close)
}

func (b Bars) check(i int) {
	if i < 0 || i >= len(b.close) {
		panic(fmt.Sprintf("candle: bar index %d outside series of %d bars", i, len(b.close)))
	}
}

func (b Bars) Open(i int) float64 {
	b.check(i)
	return b.open[i]
}

func (b Bars) High(i int) float64 {
	b.check(i)
	return b.high[i]
}

func (b Bars) Low(i int) float64 {
	b.check(i)
	return b.low[i]
}

func (b Bars) Close(i int) float64 {
	b.check(i)
	return b.close[i]
}

// BodyTop is max(open, close).
func (b Bars) BodyTop(i int) float64 {
	b.check(i)
	return math.Max(b.open[i], b.close[i])
}

// BodyBottom is min(open, close).
func (b Bars) BodyBottom(i int) float64 {
	b.check(i)
	return math.Min(b.open[i], b.close[i])
}

// RealBody is |close - open|.
func (b Bars) RealBody(i int) float64 {
	b.check(i)
	return math.Abs(b.close[i] - b.open[i])
}

// UpperShadow is high - max(open, close).
func (b Bars) UpperShadow(i int) float64 {
	return b.High(i) - b.BodyTop(i)
}

// LowerShadow is min(open, close) - low.
func (b Bars) LowerShadow(i int) float64 {
	return b.BodyBottom(i) - b.Low(i)
}

// HighLowRange is high - low.
func (b Bars) HighLowRange(i int) float64 {
	b.check(i)
	return b.high[i] - b.low[i]
}

// Color classifies the bar as White (close > open), Black (close < open)
// or Flat.
func (b Bars) Color(i int) Color {
	b.check(i)
	switch {
	case b.close[i] > b.open[i]:
		return White
	case b.close[i] < b.open[i]:
		return Black
	default:
		return Flat
	}
}

// Range measures bar i the way rangeType asks for.
func (b Bars) Range(rangeType RangeType, i int) float64 {
	switch rangeType {
	case RealBody:
		return b.RealBody(i)
	case HighLow:
		return b.HighLowRange(i)
	case Shadows:
		return b.UpperShadow(i) + b.LowerShadow(i)
	default:
		return 0
	}
}

// RealBodyGapUp reports whether the body of bar i lies entirely above the
// body of bar j.
func (b Bars) RealBodyGapUp(i, j int) bool {
	return b.BodyBottom(i) > b.BodyTop(j)
}

// RealBodyGapDown reports whether the body of bar i lies entirely below the
// body of bar j.
func (b Bars) RealBodyGapDown(i, j int) bool {
	return b.BodyTop(i) < b.BodyBottom(j)
}

// CandleGapUp reports whether bar i trades entirely above bar j.
func (b Bars) CandleGapUp(i, j int) bool {
	return b.Low(i) > b.High(j)
}

// CandleGapDown reports whether bar i trades entirely below bar j.
func (b Bars) CandleGapDown(i, j int) bool {
	return b.High(i) < b.Low(j)
}
