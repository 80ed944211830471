package candle

// ThreeLineStrike detects three same-colored candles stepping in one
// direction followed by a fourth that opens beyond the third close and
// closes beyond the first open.
var ThreeLineStrike = &Pattern{
	name:        "CDL3LINESTRIKE",
	description: "Three-Line Strike",
	span:        3,
	build: func(t *tracker, b Bars, _ Options) recognizer {
		near3 := t.track(Near, 3)
		near2 := t.track(Near, 2)

		opensNear := func(bar, prior int, near float64) bool {
			return b.Open(bar) >= b.BodyBottom(prior)-near &&
				b.Open(bar) <= b.BodyTop(prior)+near
		}

		return func(i int) int {
			c := b.Color(i - 1)
			if c == Flat || b.Color(i-3) != c || b.Color(i-2) != c || b.Color(i) != -c {
				return 0
			}
			if !opensNear(i-2, i-3, near3.Average()) || !opensNear(i-1, i-2, near2.Average()) {
				return 0
			}

			switch c {
			case White:
				if b.Close(i-1) > b.Close(i-2) && b.Close(i-2) > b.Close(i-3) &&
					b.Open(i) > b.Close(i-1) && b.Close(i) < b.Open(i-3) {
					return strength(c)
				}
			case Black:
				if b.Close(i-1) < b.Close(i-2) && b.Close(i-2) < b.Close(i-3) &&
					b.Open(i) < b.Close(i-1) && b.Close(i) > b.Open(i-3) {
					return strength(c)
				}
			}
			return 0
		}
	},
}
