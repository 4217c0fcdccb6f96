package indicator

import "github.com/guregu/null/v6"

// SMA computes the simple moving average of the closes over a trailing window
// of period bars, inclusive of the current bar. The first period-1 positions
// are undefined. A window longer than the input yields an all-undefined
// series, not an error.
func SMA(closes []float64, period int) []null.Float {
	out := make([]null.Float, len(closes))
	if period <= 0 || len(closes) < period {
		return out
	}
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= period {
			sum -= closes[i-period]
		}
		if i >= period-1 {
			out[i] = null.FloatFrom(sum / float64(period))
		}
	}
	return out
}
