package indicator

import (
	"fmt"

	"github.com/mohamedkhairy/ta-engine/pkg/ta"
	"github.com/mohamedkhairy/ta-engine/pkg/ta/candle"
	"github.com/mohamedkhairy/ta-engine/pkg/ta/filter"
	"github.com/mohamedkhairy/ta-engine/pkg/ta/window"
)

// RegisterAll registers every indicator the engine implements.
func RegisterAll(r *Registry) error {
	var defs []*Definition
	for _, p := range candle.Patterns() {
		defs = append(defs, patternDefinition(p))
	}

	defs = append(defs,
		singleInput("EMA", "Exponential Moving Average", CategoryOverlap, 30, ta.MinPeriod, filter.EMALookback, filter.EMA),
		singleInput("DEMA", "Double Exponential Moving Average", CategoryOverlap, 30, ta.MinPeriod, filter.DEMALookback, filter.DEMA),
		singleInput("TEMA", "Triple Exponential Moving Average", CategoryOverlap, 30, ta.MinPeriod, filter.TEMALookback, filter.TEMA),
		singleInput("SMA", "Simple Moving Average", CategoryOverlap, 30, ta.MinPeriod, window.SMALookback, window.SMA),
		singleInput("MAX", "Highest value over a specified period", CategoryStatistic, 30, ta.MinPeriod, window.ExtremumLookback, window.Max),
		singleInput("MIN", "Lowest value over a specified period", CategoryStatistic, 30, ta.MinPeriod, window.ExtremumLookback, window.Min),
		singleInput("VAR", "Variance", CategoryStatistic, 5, 1, window.VarianceLookback, window.Variance),
		indexInput("MAXINDEX", "Index of highest value over a specified period", window.MaxIndex),
		indexInput("MININDEX", "Index of lowest value over a specified period", window.MinIndex),
		highLowInput("MIDPRICE", "Midpoint Price over period", CategoryOverlap, window.ExtremumLookback, window.MidPrice),
		highLowInput("AROONOSC", "Aroon Oscillator", CategoryMomentum, window.AroonOscLookback, window.AroonOsc),
	)

	for _, d := range defs {
		if err := r.Register(d); err != nil {
			return fmt.Errorf("failed to register %s: %w", d.Name, err)
		}
	}
	return nil
}

// NewDefaultRegistry returns a registry holding every indicator.
func NewDefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	if err := RegisterAll(r); err != nil {
		return nil, err
	}
	return r, nil
}

func periodParameter(def, minPeriod int) Parameter {
	return Parameter{Name: OptionPeriod, Default: float64(def), Min: float64(minPeriod), Max: ta.MaxPeriod}
}

func patternDefinition(p *candle.Pattern) *Definition {
	d := &Definition{
		Name:         p.Name(),
		Description:  p.Description(),
		Category:     CategoryPattern,
		Inputs:       []string{ta.FieldOpen, ta.FieldHigh, ta.FieldLow, ta.FieldClose},
		Output:       OutputInteger,
		UsesSettings: true,
	}
	if p.UsesPenetration() {
		d.Parameters = []Parameter{{
			Name:    OptionPenetration,
			Default: p.DefaultOptions().Penetration,
		}}
	}

	d.lookback = func(settings *candle.Settings, opts Options) int {
		return p.Lookback(settings, patternOptions(opts))
	}
	d.compute = func(settings *candle.Settings, s ta.Series, startIdx, endIdx int, opts Options) Output {
		return fromIntResult(p.ComputeSeries(settings, s, startIdx, endIdx, patternOptions(opts)))
	}
	return d
}

func patternOptions(opts Options) candle.Options {
	var o candle.Options
	if opts.Penetration != nil {
		o.Penetration = *opts.Penetration
	}
	return o
}

func singleInput(
	name, description string,
	category Category,
	defaultPeriod, minPeriod int,
	lookback func(period int) int,
	compute func(in []float64, startIdx, endIdx, period int) ta.Result,
) *Definition {
	return &Definition{
		Name:        name,
		Description: description,
		Category:    category,
		Inputs:      []string{ta.FieldReal},
		Output:      OutputReal,
		Parameters:  []Parameter{periodParameter(defaultPeriod, minPeriod)},
		lookback: func(_ *candle.Settings, opts Options) int {
			return lookback(opts.Period)
		},
		compute: func(_ *candle.Settings, s ta.Series, startIdx, endIdx int, opts Options) Output {
			return fromResult(compute(s.Values(), startIdx, endIdx, opts.Period))
		},
	}
}

func indexInput(
	name, description string,
	compute func(in []float64, startIdx, endIdx, period int) ta.IntResult,
) *Definition {
	return &Definition{
		Name:        name,
		Description: description,
		Category:    CategoryStatistic,
		Inputs:      []string{ta.FieldReal},
		Output:      OutputInteger,
		Parameters:  []Parameter{periodParameter(30, ta.MinPeriod)},
		lookback: func(_ *candle.Settings, opts Options) int {
			return window.ExtremumLookback(opts.Period)
		},
		compute: func(_ *candle.Settings, s ta.Series, startIdx, endIdx int, opts Options) Output {
			return fromIntResult(compute(s.Values(), startIdx, endIdx, opts.Period))
		},
	}
}

func highLowInput(
	name, description string,
	category Category,
	lookback func(period int) int,
	compute func(high, low []float64, startIdx, endIdx, period int) ta.Result,
) *Definition {
	return &Definition{
		Name:        name,
		Description: description,
		Category:    category,
		Inputs:      []string{ta.FieldHigh, ta.FieldLow},
		Output:      OutputReal,
		Parameters:  []Parameter{periodParameter(14, ta.MinPeriod)},
		lookback: func(_ *candle.Settings, opts Options) int {
			return lookback(opts.Period)
		},
		compute: func(_ *candle.Settings, s ta.Series, startIdx, endIdx int, opts Options) Output {
			return fromResult(compute(s.High, s.Low, startIdx, endIdx, opts.Period))
		},
	}
}
