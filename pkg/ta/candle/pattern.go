package candle

import (
	"math"

	"github.com/mohamedkhairy/ta-engine/pkg/ta"
)

// Options holds the optional inputs of a pattern. Patterns that do not
// use a field ignore it.
type Options struct {
	Penetration float64 `json:"penetration"`
}

// recognizer evaluates a pattern at scan index i and returns its strength
// code: 100 bullish, -100 bearish, 0 none.
type recognizer func(i int) int

// tracker hands out the accumulators a pattern needs and keeps them so the
// scan loop can prime and roll every one of them.
type tracker struct {
	bars     Bars
	settings *Settings
	accs     []*Accumulator
}

func (t *tracker) track(k Kind, offset int) *Accumulator {
	a := NewAccumulator(t.bars, t.settings.setting(k), offset)
	t.accs = append(t.accs, a)
	return a
}

// Pattern is a candlestick pattern detector.
type Pattern struct {
	name        string
	description string
	// span is how many bars before i the pattern reads.
	span int
	// penetration is the default penetration for patterns that take one.
	penetration *float64
	build       func(t *tracker, b Bars, opts Options) recognizer
}

// Name returns the indicator name, e.g. "CDL3WHITESOLDIERS".
func (p *Pattern) Name() string {
	return p.name
}

// Description returns a human readable name.
func (p *Pattern) Description() string {
	return p.description
}

// UsesPenetration reports whether Options.Penetration affects the pattern.
func (p *Pattern) UsesPenetration() bool {
	return p.penetration != nil
}

// DefaultOptions returns the options the pattern uses when none are given.
func (p *Pattern) DefaultOptions() Options {
	if p.penetration != nil {
		return Options{Penetration: *p.penetration}
	}
	return Options{}
}

func (p *Pattern) validOptions(opts Options) bool {
	if p.penetration == nil {
		return true
	}
	return opts.Penetration >= 0 && !math.IsNaN(opts.Penetration)
}

// Lookback returns how many leading bars the pattern needs before its first
// output under the given settings, or -1 for invalid options.
func (p *Pattern) Lookback(settings *Settings, opts Options) int {
	if settings == nil || !p.validOptions(opts) {
		return -1
	}

	t := &tracker{settings: settings}
	p.build(t, Bars{}, opts)

	periods := make([]int, len(t.accs))
	for i, a := range t.accs {
		periods[i] = a.setting.Period
	}
	return ta.MaxLookback(p.span, periods...)
}

// Compute scans bars [startIdx, endIdx] and returns one strength code per
// bar from the lookback-adjusted start.
func (p *Pattern) Compute(settings *Settings, open, high, low, close []float64, startIdx, endIdx int, opts Options) ta.IntResult {
	result, ok := ta.PrepareInt(startIdx, endIdx, open, high, low, close)
	if !ok {
		return result
	}
	if settings == nil || !p.validOptions(opts) {
		return result.Fail(ta.BadParam)
	}

	startIdx, ok = ta.AdjustStart(startIdx, endIdx, p.Lookback(settings, opts))
	if !ok {
		return result
	}

	// Accumulators copy their setting here, so later changes to settings
	// do not leak into this call.
	bars := NewBars(open, high, low, close)
	t := &tracker{bars: bars, settings: settings}
	recognize := p.build(t, bars, opts)
	for _, a := range t.accs {
		a.Prime(startIdx)
	}

	outIdx := 0
	for i := startIdx; i <= endIdx; i++ {
		result.Values[outIdx] = recognize(i)
		outIdx++

		// Roll after recognition: the bar just judged joins the average
		// only for the bars that follow it.
		for _, a := range t.accs {
			a.Roll()
		}
	}

	result.BeginIndex = startIdx
	result.ElementCount = outIdx
	return result
}

// ComputeSeries runs the pattern over the OHLC fields of a series.
func (p *Pattern) ComputeSeries(settings *Settings, s ta.Series, startIdx, endIdx int, opts Options) ta.IntResult {
	return p.Compute(settings, s.Open, s.High, s.Low, s.Close, startIdx, endIdx, opts)
}

func strength(c Color) int {
	return int(c) * 100
}

func penetration(v float64) *float64 {
	return &v
}

// Patterns returns every pattern this package implements.
func Patterns() []*Pattern {
	return []*Pattern{
		TwoCrows,
		ThreeLineStrike,
		ThreeWhiteSoldiers,
		AbandonedBaby,
		DragonflyDoji,
		Engulfing,
		Hammer,
		InvertedHammer,
		LongLine,
		SpinningTop,
		TasukiGap,
	}
}
