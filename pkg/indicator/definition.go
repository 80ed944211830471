// Package indicator is the named entry point to the engine: every
// indicator is a Definition with metadata, a lookback query and a compute
// function over a ta.Series, collected in a Registry.
package indicator

import (
	"github.com/mohamedkhairy/ta-engine/pkg/ta"
	"github.com/mohamedkhairy/ta-engine/pkg/ta/candle"
)

// Category groups indicators for listing
type Category string

const (
	CategoryPattern   Category = "pattern"
	CategoryOverlap   Category = "overlap"
	CategoryMomentum  Category = "momentum"
	CategoryStatistic Category = "statistic"
	CategoryPrice     Category = "price"
)

// Output kinds
const (
	OutputReal    = "real"
	OutputInteger = "integer"
)

// Option names
const (
	OptionPeriod      = "period"
	OptionPenetration = "penetration"
)

// Options are the optional inputs of a call. Unset options take the
// indicator's default.
type Options struct {
	Period      int      `json:"period,omitempty"`
	Penetration *float64 `json:"penetration,omitempty"`
}

// Parameter documents one option an indicator accepts.
type Parameter struct {
	Name    string  `json:"name"`
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max,omitempty"`
}

// Output is the result of one call. Real is set for real-valued
// indicators, Integer for patterns and index indicators.
type Output struct {
	Status       ta.StatusCode `json:"status"`
	BeginIndex   int           `json:"begin_index"`
	ElementCount int           `json:"element_count"`
	Real         []float64     `json:"real,omitempty"`
	Integer      []int         `json:"integer,omitempty"`
}

// Err maps a failing status to its sentinel error.
func (o Output) Err() error {
	return o.Status.Err()
}

func fromResult(r ta.Result) Output {
	return Output{
		Status:       r.Status,
		BeginIndex:   r.BeginIndex,
		ElementCount: r.ElementCount,
		Real:         r.Values,
	}
}

func fromIntResult(r ta.IntResult) Output {
	return Output{
		Status:       r.Status,
		BeginIndex:   r.BeginIndex,
		ElementCount: r.ElementCount,
		Integer:      r.Values,
	}
}

type lookbackFunc func(settings *candle.Settings, opts Options) int

type computeFunc func(settings *candle.Settings, s ta.Series, startIdx, endIdx int, opts Options) Output

// Definition describes a named indicator.
type Definition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	Inputs      []string    `json:"inputs"`
	Output      string      `json:"output"`
	Parameters  []Parameter `json:"parameters,omitempty"`

	// UsesSettings reports whether results depend on the candle settings.
	UsesSettings bool `json:"uses_candle_settings"`

	lookback lookbackFunc
	compute  computeFunc
}

// Resolve fills unset options with the indicator defaults.
func (d *Definition) Resolve(opts Options) Options {
	for _, p := range d.Parameters {
		switch p.Name {
		case OptionPeriod:
			if opts.Period == 0 {
				opts.Period = int(p.Default)
			}
		case OptionPenetration:
			if opts.Penetration == nil {
				v := p.Default
				opts.Penetration = &v
			}
		}
	}
	return opts
}

// Lookback returns the number of leading bars the indicator consumes before
// its first output, or -1 for invalid options.
func (d *Definition) Lookback(settings *candle.Settings, opts Options) int {
	return d.lookback(settings, d.Resolve(opts))
}

// Compute runs the indicator over bars [startIdx, endIdx] of s.
func (d *Definition) Compute(settings *candle.Settings, s ta.Series, startIdx, endIdx int, opts Options) Output {
	return d.compute(settings, s, startIdx, endIdx, d.Resolve(opts))
}
