package ta

import (
	"github.com/sdcoffey/techan"
)

// FromTechan copies the candles of a techan time series into a Series.
// Close is also exposed as Real so single-input indicators can run on it.
func FromTechan(ts *techan.TimeSeries) Series {
	if ts == nil {
		return Series{}
	}

	n := len(ts.Candles)
	s := Series{
		Open:   make([]float64, n),
		High:   make([]float64, n),
		Low:    make([]float64, n),
		Close:  make([]float64, n),
		Volume: make([]float64, n),
	}
	for i, candle := range ts.Candles {
		s.Open[i] = candle.OpenPrice.Float()
		s.High[i] = candle.MaxPrice.Float()
		s.Low[i] = candle.MinPrice.Float()
		s.Close[i] = candle.ClosePrice.Float()
		s.Volume[i] = candle.Volume.Float()
	}
	s.Real = s.Close
	return s
}
