// Package window implements indicators over a fixed trailing window: the
// extremum family (MAXINDEX, MININDEX, MAX, MIN, MIDPRICE, AROONOSC) and
// the rolling-sum family (SMA, VAR).
package window

// Tracker follows the index of the extremum of a trailing window.
//
// When the tracked index falls out of the window the whole window is
// scanned again; otherwise only the bar entering the window is compared.
// Ties go to the most recent bar in both cases. TA-Lib's rescan keeps the
// older of two tied values instead, so MAXINDEX, MININDEX and AROONOSC can
// differ from TA-Lib right after an eviction when the window holds ties.
type Tracker struct {
	values []float64
	better func(candidate, current float64) bool

	idx   int
	value float64
}

// NewMaxTracker tracks the highest value.
func NewMaxTracker(values []float64) *Tracker {
	return &Tracker{
		values: values,
		better: func(candidate, current float64) bool { return candidate >= current },
		idx:    -1,
	}
}

// NewMinTracker tracks the lowest value.
func NewMinTracker(values []float64) *Tracker {
	return &Tracker{
		values: values,
		better: func(candidate, current float64) bool { return candidate <= current },
		idx:    -1,
	}
}

// Update moves the window to [trailingIdx, today] and returns the index of
// its extremum. Both bounds must advance by one between calls.
func (t *Tracker) Update(trailingIdx, today int) int {
	if t.idx < trailingIdx {
		t.idx = trailingIdx
		t.value = t.values[trailingIdx]
		for i := trailingIdx + 1; i <= today; i++ {
			t.take(i)
		}
		return t.idx
	}

	t.take(today)
	return t.idx
}

// Value returns the value at the tracked index.
func (t *Tracker) Value() float64 {
	return t.value
}

func (t *Tracker) take(i int) {
	if v := t.values[i]; t.better(v, t.value) {
		t.idx = i
		t.value = v
	}
}
