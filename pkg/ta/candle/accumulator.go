package candle

// Accumulator maintains the sum of one candle feature over a trailing window
// of Setting.Period bars and turns it into a threshold.
//
// It follows a scan index i and judges bar i-offset: the window covers bars
// [i-offset-period, i-offset-1], so the judged bar is never part of its own
// average. Roll must be called after the bar has been evaluated.
type Accumulator struct {
	bars    Bars
	setting Setting
	offset  int

	current     int
	trailingIdx int
	total       float64
}

// NewAccumulator returns an accumulator for the given setting following
// bars offset positions behind the scan index. It must be primed before use.
func NewAccumulator(bars Bars, setting Setting, offset int) *Accumulator {
	return &Accumulator{
		bars:    bars,
		setting: setting,
		offset:  offset,
	}
}

// Prime positions the accumulator at startIdx and sums the window in front
// of it. startIdx must be at least Period+offset.
func (a *Accumulator) Prime(startIdx int) {
	a.current = startIdx
	a.trailingIdx = startIdx - a.setting.Period
	a.total = 0
	for i := a.trailingIdx; i < startIdx; i++ {
		a.total += a.feature(i)
	}
}

// Average returns the threshold for the judged bar:
// factor * (sum/period), halved for the Shadows range type.
// With a zero period the judged bar's own feature replaces the average.
func (a *Accumulator) Average() float64 {
	var avg float64
	if a.setting.Period != 0 {
		avg = a.total / float64(a.setting.Period)
	} else {
		avg = a.feature(a.current)
	}
	if a.setting.RangeType == Shadows {
		avg /= 2
	}
	return a.setting.Factor * avg
}

// Roll moves the window one bar forward: the judged bar enters, the oldest
// bar leaves.
func (a *Accumulator) Roll() {
	a.total += a.feature(a.current) - a.feature(a.trailingIdx)
	a.current++
	a.trailingIdx++
}

// Sum returns the running total over the current window.
func (a *Accumulator) Sum() float64 {
	return a.total
}

// Window returns the first and last bar of the current window. The window
// is empty (first > last) when the period is zero.
func (a *Accumulator) Window() (first, last int) {
	return a.trailingIdx - a.offset, a.current - a.offset - 1
}

// TrailingIndex returns the bar that leaves the window on the next Roll.
func (a *Accumulator) TrailingIndex() int {
	return a.trailingIdx - a.offset
}

// Setting returns the setting the accumulator was built with.
func (a *Accumulator) Setting() Setting {
	return a.setting
}

func (a *Accumulator) feature(scanIdx int) float64 {
	return a.bars.Range(a.setting.RangeType, scanIdx-a.offset)
}
