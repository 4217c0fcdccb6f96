package indicator

import "github.com/guregu/null/v6"

// EMA computes the exponential moving average with smoothing factor
// α = 2/(period+1). The value at index period-1 is seeded with the SMA of the
// first period closes; earlier positions are undefined.
func EMA(closes []float64, period int) []null.Float {
	out := make([]null.Float, len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	alpha := 2.0 / float64(period+1)

	seed := 0.0
	for _, c := range closes[:period] {
		seed += c
	}
	prev := seed / float64(period)
	out[period-1] = null.FloatFrom(prev)

	for i := period; i < len(closes); i++ {
		prev = closes[i]*alpha + prev*(1-alpha)
		out[i] = null.FloatFrom(prev)
	}
	return out
}
