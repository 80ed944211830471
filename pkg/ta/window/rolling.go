package window

import "github.com/mohamedkhairy/ta-engine/pkg/ta"

// SMALookback returns period-1, or -1 when period is outside [2,100000].
func SMALookback(period int) int {
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return -1
	}
	return period - 1
}

// VarianceLookback returns period-1, or -1 when period is outside [1,100000].
func VarianceLookback(period int) int {
	if !ta.ValidPeriod(period, 1) {
		return -1
	}
	return period - 1
}

// SMA computes the simple moving average with a running sum.
func SMA(in []float64, startIdx, endIdx, period int) ta.Result {
	result, ok := ta.Prepare(startIdx, endIdx, in)
	if !ok {
		return result
	}
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return result.Fail(ta.BadParam)
	}

	lookback := SMALookback(period)
	startIdx, ok = ta.AdjustStart(startIdx, endIdx, lookback)
	if !ok {
		return result
	}

	trailingIdx := startIdx - lookback
	var total float64
	for i := trailingIdx; i < startIdx; i++ {
		total += in[i]
	}

	outIdx := 0
	for today := startIdx; today <= endIdx; today++ {
		total += in[today]
		result.Values[outIdx] = total / float64(period)
		total -= in[trailingIdx]
		trailingIdx++
		outIdx++
	}

	result.BeginIndex = startIdx
	result.ElementCount = outIdx
	return result
}

// Variance computes the population variance E[x²] - E[x]² over the last
// period bars.
func Variance(in []float64, startIdx, endIdx, period int) ta.Result {
	result, ok := ta.Prepare(startIdx, endIdx, in)
	if !ok {
		return result
	}
	if !ta.ValidPeriod(period, 1) {
		return result.Fail(ta.BadParam)
	}

	lookback := VarianceLookback(period)
	startIdx, ok = ta.AdjustStart(startIdx, endIdx, lookback)
	if !ok {
		return result
	}

	trailingIdx := startIdx - lookback
	var sum, sumSquares float64
	for i := trailingIdx; i < startIdx; i++ {
		sum += in[i]
		sumSquares += in[i] * in[i]
	}

	n := float64(period)
	outIdx := 0
	for today := startIdx; today <= endIdx; today++ {
		sum += in[today]
		sumSquares += in[today] * in[today]
		mean := sum / n
		result.Values[outIdx] = sumSquares/n - mean*mean

		sum -= in[trailingIdx]
		sumSquares -= in[trailingIdx] * in[trailingIdx]
		trailingIdx++
		outIdx++
	}

	result.BeginIndex = startIdx
	result.ElementCount = outIdx
	return result
}
