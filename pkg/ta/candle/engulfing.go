package candle

// Engulfing: the body of bar i covers the opposite-colored body of bar i-1.
// Output 100 for a white engulfing bar, -100 for a black one.
var Engulfing = &Pattern{
	name:        "CDLENGULFING",
	description: "Engulfing Pattern",
	span:        2,
	build: func(_ *tracker, b Bars, _ Options) recognizer {
		return func(i int) int {
			switch {
			case b.Color(i) == White && b.Color(i-1) == Black &&
				b.Close(i) > b.Open(i-1) && b.Open(i) < b.Close(i-1):
				return strength(White)
			case b.Color(i) == Black && b.Color(i-1) == White &&
				b.Open(i) > b.Close(i-1) && b.Close(i) < b.Open(i-1):
				return strength(Black)
			}
			return 0
		}
	},
}
