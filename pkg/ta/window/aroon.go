package window

import "github.com/mohamedkhairy/ta-engine/pkg/ta"

// AroonOscLookback returns period, or -1 when period is outside [2,100000].
// The oscillator looks at period+1 bars.
func AroonOscLookback(period int) int {
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return -1
	}
	return period
}

// AroonOsc computes Aroon Up minus Aroon Down, which reduces to
// 100/period * (index of highest high - index of lowest low).
func AroonOsc(high, low []float64, startIdx, endIdx, period int) ta.Result {
	result, ok := ta.Prepare(startIdx, endIdx, high, low)
	if !ok {
		return result
	}
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return result.Fail(ta.BadParam)
	}

	lookback := AroonOscLookback(period)
	startIdx, ok = ta.AdjustStart(startIdx, endIdx, lookback)
	if !ok {
		return result
	}

	factor := 100.0 / float64(period)
	highest, lowest := NewMaxTracker(high), NewMinTracker(low)
	outIdx := 0
	for today := startIdx; today <= endIdx; today++ {
		trailingIdx := today - lookback
		highIdx := highest.Update(trailingIdx, today)
		lowIdx := lowest.Update(trailingIdx, today)
		result.Values[outIdx] = factor * float64(highIdx-lowIdx)
		outIdx++
	}

	result.BeginIndex = startIdx
	result.ElementCount = outIdx
	return result
}
