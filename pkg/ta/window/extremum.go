package window

import "github.com/mohamedkhairy/ta-engine/pkg/ta"

// ExtremumLookback returns period-1 for MAX, MIN, MAXINDEX, MININDEX and
// MIDPRICE, or -1 when period is outside [2,100000].
func ExtremumLookback(period int) int {
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return -1
	}
	return period - 1
}

// MaxIndex returns, per bar, the index of the highest value over the last
// period bars.
func MaxIndex(in []float64, startIdx, endIdx, period int) ta.IntResult {
	return extremumIndex(in, startIdx, endIdx, period, NewMaxTracker)
}

// MinIndex returns, per bar, the index of the lowest value over the last
// period bars.
func MinIndex(in []float64, startIdx, endIdx, period int) ta.IntResult {
	return extremumIndex(in, startIdx, endIdx, period, NewMinTracker)
}

// Max returns the highest value over the last period bars.
func Max(in []float64, startIdx, endIdx, period int) ta.Result {
	return extremumValue(in, startIdx, endIdx, period, NewMaxTracker)
}

// Min returns the lowest value over the last period bars.
func Min(in []float64, startIdx, endIdx, period int) ta.Result {
	return extremumValue(in, startIdx, endIdx, period, NewMinTracker)
}

func extremumIndex(in []float64, startIdx, endIdx, period int, newTracker func([]float64) *Tracker) ta.IntResult {
	result, ok := ta.PrepareInt(startIdx, endIdx, in)
	if !ok {
		return result
	}
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return result.Fail(ta.BadParam)
	}

	lookback := ExtremumLookback(period)
	startIdx, ok = ta.AdjustStart(startIdx, endIdx, lookback)
	if !ok {
		return result
	}

	tracker := newTracker(in)
	outIdx := 0
	for today := startIdx; today <= endIdx; today++ {
		result.Values[outIdx] = tracker.Update(today-lookback, today)
		outIdx++
	}

	result.BeginIndex = startIdx
	result.ElementCount = outIdx
	return result
}

func extremumValue(in []float64, startIdx, endIdx, period int, newTracker func([]float64) *Tracker) ta.Result {
	indices := extremumIndex(in, startIdx, endIdx, period, newTracker)
	if indices.Status != ta.Success {
		return ta.Result{Values: []float64{}}.Fail(indices.Status)
	}

	result := ta.NewResult(startIdx, endIdx)

	for k, idx := range indices.Output() {
		result.Values[k] = in[idx]
	}
	result.BeginIndex = indices.BeginIndex
	result.ElementCount = indices.ElementCount
	return result
}

// MidPrice returns (highest high + lowest low)/2 over the last period bars.
func MidPrice(high, low []float64, startIdx, endIdx, period int) ta.Result {
	result, ok := ta.Prepare(startIdx, endIdx, high, low)
	if !ok {
		return result
	}
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return result.Fail(ta.BadParam)
	}

	lookback := ExtremumLookback(period)
	startIdx, ok = ta.AdjustStart(startIdx, endIdx, lookback)
	if !ok {
		return result
	}

	highest, lowest := NewMaxTracker(high), NewMinTracker(low)
	outIdx := 0
	for today := startIdx; today <= endIdx; today++ {
		trailingIdx := today - lookback
		highest.Update(trailingIdx, today)
		lowest.Update(trailingIdx, today)
		result.Values[outIdx] = (highest.Value() + lowest.Value()) / 2
		outIdx++
	}

	result.BeginIndex = startIdx
	result.ElementCount = outIdx
	return result
}
