package candle

// DragonflyDoji: a doji body with no upper shadow and a lower shadow that
// is not very short. Output 100.
var DragonflyDoji = &Pattern{
	name:        "CDLDRAGONFLYDOJI",
	description: "Dragonfly Doji",
	build: func(t *tracker, b Bars, _ Options) recognizer {
		bodyDoji := t.track(BodyDoji, 0)
		shadowVeryShort := t.track(ShadowVeryShort, 0)

		return func(i int) int {
			if b.RealBody(i) <= bodyDoji.Average() &&
				b.UpperShadow(i) < shadowVeryShort.Average() &&
				b.LowerShadow(i) > shadowVeryShort.Average() {
				return 100
			}
			return 0
		}
	},
}

// LongLine: a long body with short shadows. Output follows the bar color.
var LongLine = &Pattern{
	name:        "CDLLONGLINE",
	description: "Long Line Candle",
	build: func(t *tracker, b Bars, _ Options) recognizer {
		bodyLong := t.track(BodyLong, 0)
		shadowShort := t.track(ShadowShort, 0)

		return func(i int) int {
			if b.RealBody(i) > bodyLong.Average() &&
				b.UpperShadow(i) < shadowShort.Average() &&
				b.LowerShadow(i) < shadowShort.Average() {
				return strength(b.Color(i))
			}
			return 0
		}
	},
}

// SpinningTop: a small body with both shadows longer than the body.
// Output follows the bar color.
var SpinningTop = &Pattern{
	name:        "CDLSPINNINGTOP",
	description: "Spinning Top",
	build: func(t *tracker, b Bars, _ Options) recognizer {
		bodyShort := t.track(BodyShort, 0)

		return func(i int) int {
			body := b.RealBody(i)
			if body < bodyShort.Average() && b.UpperShadow(i) > body && b.LowerShadow(i) > body {
				return strength(b.Color(i))
			}
			return 0
		}
	},
}
