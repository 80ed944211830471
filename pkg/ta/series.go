package ta

import (
	"github.com/shopspring/decimal"
)

// Input field names.
const (
	FieldOpen   = "open"
	FieldHigh   = "high"
	FieldLow    = "low"
	FieldClose  = "close"
	FieldVolume = "volume"
	FieldReal   = "real"
)

// Series is the fully materialized input of one computation. Fields an
// indicator does not need may be nil. The engine never mutates it.
type Series struct {
	Open   []float64 `json:"open,omitempty"`
	High   []float64 `json:"high,omitempty"`
	Low    []float64 `json:"low,omitempty"`
	Close  []float64 `json:"close,omitempty"`
	Volume []float64 `json:"volume,omitempty"`
	Real   []float64 `json:"real,omitempty"`
}

// Field returns the named input array.
func (s Series) Field(name string) ([]float64, bool) {
	switch name {
	case FieldOpen:
		return s.Open, true
	case FieldHigh:
		return s.High, true
	case FieldLow:
		return s.Low, true
	case FieldClose:
		return s.Close, true
	case FieldVolume:
		return s.Volume, true
	case FieldReal:
		return s.Real, true
	default:
		return nil, false
	}
}

// Values returns the single-input array: Real when set, Close otherwise.
func (s Series) Values() []float64 {
	if s.Real != nil {
		return s.Real
	}
	return s.Close
}

// Len returns the length of the longest input array.
func (s Series) Len() int {
	n := 0
	for _, f := range [][]float64{s.Open, s.High, s.Low, s.Close, s.Volume, s.Real} {
		n = max(n, len(f))
	}
	return n
}

// Widen converts 32-bit input to the engine's canonical float64 width.
func Widen(values []float32) []float64 {
	if values == nil {
		return nil
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// FromFloat32 builds a Series from 32-bit OHLCV arrays.
func FromFloat32(open, high, low, close, volume []float32) Series {
	return Series{
		Open:   Widen(open),
		High:   Widen(high),
		Low:    Widen(low),
		Close:  Widen(close),
		Volume: Widen(volume),
	}
}

// FromDecimals converts decimal prices. Values that have no exact float64
// representation are rounded to the nearest one.
func FromDecimals(values []decimal.Decimal) []float64 {
	if values == nil {
		return nil
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i], _ = v.Float64()
	}
	return out
}

// FromDecimal builds a Series from decimal OHLCV arrays.
func FromDecimal(open, high, low, close, volume []decimal.Decimal) Series {
	return Series{
		Open:   FromDecimals(open),
		High:   FromDecimals(high),
		Low:    FromDecimals(low),
		Close:  FromDecimals(close),
		Volume: FromDecimals(volume),
	}
}
