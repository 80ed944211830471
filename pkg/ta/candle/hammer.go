package candle

// Hammer: a small body near the prior low with a long lower shadow and
// almost no upper shadow. Output 100.
var Hammer = &Pattern{
	name:        "CDLHAMMER",
	description: "Hammer",
	span:        1,
	build: func(t *tracker, b Bars, _ Options) recognizer {
		bodyShort := t.track(BodyShort, 0)
		shadowLong := t.track(ShadowLong, 0)
		shadowVeryShort := t.track(ShadowVeryShort, 0)
		near := t.track(Near, 1)

		return func(i int) int {
			if b.RealBody(i) < bodyShort.Average() &&
				b.LowerShadow(i) > shadowLong.Average() &&
				b.UpperShadow(i) < shadowVeryShort.Average() &&
				b.BodyBottom(i) <= b.Low(i-1)+near.Average() {
				return 100
			}
			return 0
		}
	},
}

// InvertedHammer: a small body gapping down from the prior body with a long
// upper shadow and almost no lower shadow. Output 100.
var InvertedHammer = &Pattern{
	name:        "CDLINVERTEDHAMMER",
	description: "Inverted Hammer",
	span:        1,
	build: func(t *tracker, b Bars, _ Options) recognizer {
		bodyShort := t.track(BodyShort, 0)
		shadowLong := t.track(ShadowLong, 0)
		shadowVeryShort := t.track(ShadowVeryShort, 0)

		return func(i int) int {
			if b.RealBody(i) < bodyShort.Average() &&
				b.UpperShadow(i) > shadowLong.Average() &&
				b.LowerShadow(i) < shadowVeryShort.Average() &&
				b.RealBodyGapDown(i, i-1) {
				return 100
			}
			return 0
		}
	},
}
