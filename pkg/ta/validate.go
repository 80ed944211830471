package ta

// Period bounds shared by every windowed indicator.
const (
	MinPeriod = 2
	MaxPeriod = 100000
)

// CheckRange validates the requested [startIdx, endIdx] range.
// It runs before anything else and never looks at the data.
func CheckRange(startIdx, endIdx int) StatusCode {
	if startIdx < 0 {
		return OutOfRangeStartIndex
	}
	if endIdx < 0 || endIdx < startIdx {
		return OutOfRangeEndIndex
	}
	return Success
}

// CheckSeries verifies that every required input is present, that all inputs
// have the same length and that they cover endIdx.
func CheckSeries(endIdx int, series ...[]float64) StatusCode {
	if len(series) == 0 {
		return BadParam
	}
	n := len(series[0])
	for _, s := range series {
		if s == nil || len(s) != n {
			return BadParam
		}
	}
	if endIdx >= n {
		return BadParam
	}
	return Success
}

// Validate runs the range check followed by the series check.
func Validate(startIdx, endIdx int, series ...[]float64) StatusCode {
	if status := CheckRange(startIdx, endIdx); status != Success {
		return status
	}
	return CheckSeries(endIdx, series...)
}

// Prepare validates the range and inputs, then allocates the zeroed output
// buffer. A failing call carries its status and an empty buffer, so the
// allocation is always bounded by the input length.
func Prepare(startIdx, endIdx int, series ...[]float64) (Result, bool) {
	if status := Validate(startIdx, endIdx, series...); status != Success {
		return Result{Values: []float64{}}.Fail(status), false
	}
	return NewResult(startIdx, endIdx), true
}

// PrepareInt is Prepare for integer outputs.
func PrepareInt(startIdx, endIdx int, series ...[]float64) (IntResult, bool) {
	if status := Validate(startIdx, endIdx, series...); status != Success {
		return IntResult{Values: []int{}}.Fail(status), false
	}
	return NewIntResult(startIdx, endIdx), true
}

// ValidPeriod reports whether period lies in [minPeriod, MaxPeriod].
func ValidPeriod(period, minPeriod int) bool {
	return period >= minPeriod && period <= MaxPeriod
}

// AdjustStart moves startIdx up to the lookback. The second return value is
// false when nothing is left to compute, which is a successful empty call.
func AdjustStart(startIdx, endIdx, lookback int) (int, bool) {
	if startIdx < lookback {
		startIdx = lookback
	}
	return startIdx, startIdx <= endIdx
}

// MaxLookback returns the largest of the given periods plus a fixed bar offset.
func MaxLookback(offset int, periods ...int) int {
	m := 0
	for _, p := range periods {
		m = max(m, p)
	}
	return m + offset
}
