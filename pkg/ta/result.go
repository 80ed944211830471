package ta

// Result is the output of an indicator producing real values.
// Values[k] corresponds to bar BeginIndex+k for k < ElementCount.
type Result struct {
	Status       StatusCode `json:"status"`
	BeginIndex   int        `json:"begin_index"`
	ElementCount int        `json:"element_count"`
	Values       []float64  `json:"values"`
}

// IntResult is the output of an indicator producing integers
// (pattern strength codes, bar indices).
type IntResult struct {
	Status       StatusCode `json:"status"`
	BeginIndex   int        `json:"begin_index"`
	ElementCount int        `json:"element_count"`
	Values       []int      `json:"values"`
}

// OutputLen is the size of the buffer a call over [startIdx, endIdx] allocates.
func OutputLen(startIdx, endIdx int) int {
	return max(0, endIdx-startIdx+1)
}

// NewResult allocates a zeroed result for the requested range. The range
// must already be validated against the inputs; see Prepare.
func NewResult(startIdx, endIdx int) Result {
	return Result{Values: make([]float64, OutputLen(startIdx, endIdx))}
}

// NewIntResult allocates a zeroed integer result for the requested range.
// The range must already be validated against the inputs; see PrepareInt.
func NewIntResult(startIdx, endIdx int) IntResult {
	return IntResult{Values: make([]int, OutputLen(startIdx, endIdx))}
}

// Fail sets a failing status and leaves the buffer untouched.
func (r Result) Fail(status StatusCode) Result {
	r.Status = status
	r.BeginIndex = 0
	r.ElementCount = 0
	return r
}

// Fail sets a failing status and leaves the buffer untouched.
func (r IntResult) Fail(status StatusCode) IntResult {
	r.Status = status
	r.BeginIndex = 0
	r.ElementCount = 0
	return r
}

// Output returns the populated part of the buffer.
func (r Result) Output() []float64 {
	return r.Values[:r.ElementCount]
}

// Output returns the populated part of the buffer.
func (r IntResult) Output() []int {
	return r.Values[:r.ElementCount]
}
