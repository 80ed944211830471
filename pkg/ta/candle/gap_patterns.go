package candle

import "math"

// TasukiGap: a gap in the direction of the trend, a continuation candle,
// then an opposite candle of near-equal size that opens inside the second
// body and closes inside the gap without filling it. Output follows the
// color of the middle bar.
var TasukiGap = &Pattern{
	name:        "CDLTASUKIGAP",
	description: "Tasuki Gap",
	span:        2,
	build: func(t *tracker, b Bars, _ Options) recognizer {
		near := t.track(Near, 1)

		return func(i int) int {
			sameSize := math.Abs(b.RealBody(i-1)-b.RealBody(i)) < near.Average()

			upside := b.RealBodyGapUp(i-1, i-2) &&
				b.Color(i-1) == White && b.Color(i) == Black &&
				b.Open(i) < b.Close(i-1) && b.Open(i) > b.Open(i-1) &&
				b.Close(i) < b.Open(i-1) && b.Close(i) > b.BodyTop(i-2)

			downside := b.RealBodyGapDown(i-1, i-2) &&
				b.Color(i-1) == Black && b.Color(i) == White &&
				b.Open(i) < b.Open(i-1) && b.Open(i) > b.Close(i-1) &&
				b.Close(i) > b.Open(i-1) && b.Close(i) < b.BodyBottom(i-2)

			if (upside || downside) && sameSize {
				return strength(b.Color(i - 1))
			}
			return 0
		}
	},
}

// AbandonedBaby: a long candle, a doji gapping away from it, then a candle
// of the opposite color gapping back and closing well into the first body.
// Output follows the color of the last bar.
var AbandonedBaby = &Pattern{
	name:        "CDLABANDONEDBABY",
	description: "Abandoned Baby",
	span:        2,
	penetration: penetration(0.3),
	build: func(t *tracker, b Bars, opts Options) recognizer {
		bodyLong := t.track(BodyLong, 2)
		bodyDoji := t.track(BodyDoji, 1)
		bodyShort := t.track(BodyShort, 0)

		return func(i int) int {
			if !(b.RealBody(i-2) > bodyLong.Average() &&
				b.RealBody(i-1) <= bodyDoji.Average() &&
				b.RealBody(i) > bodyShort.Average()) {
				return 0
			}

			reach := b.RealBody(i-2) * opts.Penetration
			bearish := b.Color(i-2) == White && b.Color(i) == Black &&
				b.Close(i) < b.Close(i-2)-reach &&
				b.CandleGapUp(i-1, i-2) && b.CandleGapDown(i, i-1)
			bullish := b.Color(i-2) == Black && b.Color(i) == White &&
				b.Close(i) > b.Close(i-2)+reach &&
				b.CandleGapDown(i-1, i-2) && b.CandleGapUp(i, i-1)

			if bearish || bullish {
				return strength(b.Color(i))
			}
			return 0
		}
	},
}

// TwoCrows: a long white candle, a black candle gapping up from it, then a
// black candle opening inside the second body and closing inside the first.
// Output -100.
var TwoCrows = &Pattern{
	name:        "CDL2CROWS",
	description: "Two Crows",
	span:        2,
	build: func(t *tracker, b Bars, _ Options) recognizer {
		bodyLong := t.track(BodyLong, 2)

		return func(i int) int {
			if b.Color(i-2) == White && b.RealBody(i-2) > bodyLong.Average() &&
				b.Color(i-1) == Black && b.RealBodyGapUp(i-1, i-2) &&
				b.Color(i) == Black &&
				b.Open(i) < b.Open(i-1) && b.Open(i) > b.Close(i-1) &&
				b.Close(i) > b.Open(i-2) && b.Close(i) < b.Close(i-2) {
				return strength(Black)
			}
			return 0
		}
	},
}
