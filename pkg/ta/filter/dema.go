package filter

import "github.com/mohamedkhairy/ta-engine/pkg/ta"

// DEMALookback returns 2*(period-1), or -1 for an invalid period.
func DEMALookback(period int) int {
	lookback := EMALookback(period)
	if lookback < 0 {
		return -1
	}
	return 2 * lookback
}

// DEMA computes the double exponential moving average 2*EMA - EMA(EMA).
func DEMA(in []float64, startIdx, endIdx, period int) ta.Result {
	result, ok := ta.Prepare(startIdx, endIdx, in)
	if !ok {
		return result
	}
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return result.Fail(ta.BadParam)
	}

	startIdx, ok = ta.AdjustStart(startIdx, endIdx, DEMALookback(period))
	if !ok {
		return result
	}

	k := SmoothingFactor(period)
	lookbackEMA := EMALookback(period)

	first := ema(in, startIdx-lookbackEMA, endIdx, period, k, ta.NewResult(startIdx-lookbackEMA, endIdx))
	if done(first) {
		return propagate(result, first)
	}
	second := pass(first, period, k)
	if done(second) {
		return propagate(result, second)
	}

	firstIdx := second.BeginIndex
	for outIdx := 0; outIdx < second.ElementCount; outIdx++ {
		result.Values[outIdx] = 2*first.Values[firstIdx] - second.Values[outIdx]
		firstIdx++
	}

	result.BeginIndex = first.BeginIndex + second.BeginIndex
	result.ElementCount = second.ElementCount
	return result
}

// propagate copies the status of an inner pass that produced nothing usable.
func propagate(result, inner ta.Result) ta.Result {
	if inner.Status != ta.Success {
		return result.Fail(inner.Status)
	}
	return result
}
