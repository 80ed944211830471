package candle

// ThreeWhiteSoldiers detects three advancing white candles:
//   - three consecutive white bars with rising closes
//   - each with a very short upper shadow
//   - the 2nd and 3rd open within or near the prior body
//   - the 2nd and 3rd bodies are not far shorter than the prior one
//   - the last body is not short
//
// The output is 100 on the third bar.
var ThreeWhiteSoldiers = &Pattern{
	name:        "CDL3WHITESOLDIERS",
	description: "Three Advancing White Soldiers",
	span:        2,
	build: func(t *tracker, b Bars, _ Options) recognizer {
		// Indexed by bar offset from i.
		var veryShort [3]*Accumulator
		for offset := 2; offset >= 0; offset-- {
			veryShort[offset] = t.track(ShadowVeryShort, offset)
		}
		var near, far [3]*Accumulator
		for offset := 2; offset >= 1; offset-- {
			near[offset] = t.track(Near, offset)
			far[offset] = t.track(Far, offset)
		}
		bodyShort := t.track(BodyShort, 0)

		return func(i int) int {
			for offset := 2; offset >= 0; offset-- {
				bar := i - offset
				if b.Color(bar) != White || b.UpperShadow(bar) >= veryShort[offset].Average() {
					return 0
				}
			}
			if !(b.Close(i) > b.Close(i-1) && b.Close(i-1) > b.Close(i-2)) {
				return 0
			}
			for offset := 1; offset >= 0; offset-- {
				bar, prior := i-offset, i-offset-1
				if !(b.Open(bar) > b.Open(prior) && b.Open(bar) <= b.Close(prior)+near[offset+1].Average()) {
					return 0
				}
				if !(b.RealBody(bar) > b.RealBody(prior)-far[offset+1].Average()) {
					return 0
				}
			}
			if b.RealBody(i) <= bodyShort.Average() {
				return 0
			}
			return 100
		}
	},
}
