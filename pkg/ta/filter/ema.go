// Package filter implements the recursive exponential smoothers: EMA and
// its double and triple compositions DEMA and TEMA.
package filter

import "github.com/mohamedkhairy/ta-engine/pkg/ta"

// SmoothingFactor is k = 2/(period+1).
func SmoothingFactor(period int) float64 {
	return 2.0 / float64(period+1)
}

// EMALookback returns period-1, or -1 when period is outside [2,100000].
func EMALookback(period int) int {
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return -1
	}
	return period - 1
}

// EMA computes the exponential moving average of in over [startIdx, endIdx].
// The first output is the arithmetic mean of the period values ending at the
// adjusted start; every later one is k*value + (1-k)*previous.
func EMA(in []float64, startIdx, endIdx, period int) ta.Result {
	result, ok := ta.Prepare(startIdx, endIdx, in)
	if !ok {
		return result
	}
	if !ta.ValidPeriod(period, ta.MinPeriod) {
		return result.Fail(ta.BadParam)
	}

	return ema(in, startIdx, endIdx, period, SmoothingFactor(period), result)
}

// ema runs one smoothing pass into result.Values. Inputs are already
// validated.
func ema(in []float64, startIdx, endIdx, period int, k float64, result ta.Result) ta.Result {
	lookback := period - 1
	startIdx, ok := ta.AdjustStart(startIdx, endIdx, lookback)
	if !ok {
		return result
	}

	// Seed with the simple average of the first window.
	today := startIdx - lookback
	var sum float64
	for i := 0; i < period; i++ {
		sum += in[today]
		today++
	}
	prev := sum / float64(period)

	result.Values[0] = prev
	outIdx := 1
	for today <= endIdx {
		prev = (in[today]-prev)*k + prev
		result.Values[outIdx] = prev
		outIdx++
		today++
	}

	result.BeginIndex = startIdx
	result.ElementCount = outIdx
	return result
}

// pass smooths the populated part of an earlier pass.
func pass(prior ta.Result, period int, k float64) ta.Result {
	in := prior.Output()
	result, ok := ta.Prepare(0, len(in)-1, in)
	if !ok {
		return result
	}
	return ema(in, 0, len(in)-1, period, k, result)
}

// done reports whether a pass leaves nothing for the next one. A failing
// pass is returned unchanged by the caller.
func done(r ta.Result) bool {
	return r.Status != ta.Success || r.ElementCount == 0
}
