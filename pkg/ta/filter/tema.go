package filter

import "github.com/mohamedkhairy/ta-engine/pkg/ta"

// TEMALookback returns 3*(period-1), or -1 for an invalid period.
func TEMALookback(period int) int {
	lookback := EMALookback(period)
	if lookback < 0 {
		return -1
	}
	return 3 * lookback
}

// TEMA computes the triple exponential moving average
// 3*EMA - 3*EMA(EMA) + EMA(EMA(EMA)).
func TEMA(in []float64, startIdx, endIdx, period int) ta.Result {
	result, ok := ta.Prepare(startIdx, endIdx, in)
	if !ok {
		return result
	}
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return result.Fail(ta.BadParam)
	}

	startIdx, ok = ta.AdjustStart(startIdx, endIdx, TEMALookback(period))
	if !ok {
		return result
	}

	k := SmoothingFactor(period)
	lookbackEMA := EMALookback(period)

	firstStart := startIdx - 2*lookbackEMA
	first := ema(in, firstStart, endIdx, period, k, ta.NewResult(firstStart, endIdx))
	if done(first) {
		return propagate(result, first)
	}
	second := pass(first, period, k)
	if done(second) {
		return propagate(result, second)
	}
	third := pass(second, period, k)
	if done(third) {
		return propagate(result, third)
	}

	firstIdx := second.BeginIndex + third.BeginIndex
	secondIdx := third.BeginIndex
	for outIdx := 0; outIdx < third.ElementCount; outIdx++ {
		result.Values[outIdx] = 3*first.Values[firstIdx] - 3*second.Values[secondIdx] + third.Values[outIdx]
		firstIdx++
		secondIdx++
	}

	result.BeginIndex = first.BeginIndex + second.BeginIndex + third.BeginIndex
	result.ElementCount = third.ElementCount
	return result
}
