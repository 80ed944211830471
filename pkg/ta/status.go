// Package ta holds the call contract shared by every indicator: status codes,
// result records, range validation, lookback helpers and the input series.
package ta

import "errors"

// StatusCode is the outcome of one indicator call.
type StatusCode int

const (
	Success StatusCode = iota
	OutOfRangeStartIndex
	OutOfRangeEndIndex
	BadParam
)

var (
	ErrOutOfRangeStartIndex = errors.New("start index out of range")
	ErrOutOfRangeEndIndex   = errors.New("end index out of range")
	ErrBadParam             = errors.New("bad parameter")
)

// String returns the status name
func (s StatusCode) String() string {
	switch s {
	case Success:
		return "Success"
	case OutOfRangeStartIndex:
		return "OutOfRangeStartIndex"
	case OutOfRangeEndIndex:
		return "OutOfRangeEndIndex"
	case BadParam:
		return "BadParam"
	default:
		return "Unknown"
	}
}

// Err maps a failing status to its sentinel error. Success maps to nil.
func (s StatusCode) Err() error {
	switch s {
	case Success:
		return nil
	case OutOfRangeStartIndex:
		return ErrOutOfRangeStartIndex
	case OutOfRangeEndIndex:
		return ErrOutOfRangeEndIndex
	default:
		return ErrBadParam
	}
}

// MarshalText encodes the status by name so JSON payloads stay readable.
func (s StatusCode) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
