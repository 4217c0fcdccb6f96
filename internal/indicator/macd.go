package indicator

import "github.com/guregu/null/v6"

// MACDLines computes the MACD line (fast EMA minus slow EMA), the signal line
// (an EMA of the defined MACD points), and the histogram (line minus signal).
// The line is defined once the slow EMA is; the signal needs signalPeriod
// defined MACD points beyond that; the histogram follows the signal.
func MACDLines(closes []float64, fast, slow, signalPeriod int) (line, signal, hist []null.Float) {
	n := len(closes)
	line = make([]null.Float, n)
	signal = make([]null.Float, n)
	hist = make([]null.Float, n)

	fastEMA := EMA(closes, fast)
	slowEMA := EMA(closes, slow)
	for i := 0; i < n; i++ {
		if fastEMA[i].Valid && slowEMA[i].Valid {
			line[i] = null.FloatFrom(fastEMA[i].Float64 - slowEMA[i].Float64)
		}
	}

	// Collapse the defined MACD points into a dense slice, run the EMA over
	// it, then map the results back to the original bar positions.
	vals := make([]float64, 0, n)
	idxs := make([]int, 0, n)
	for i, v := range line {
		if v.Valid {
			vals = append(vals, v.Float64)
			idxs = append(idxs, i)
		}
	}
	for j, v := range EMA(vals, signalPeriod) {
		if !v.Valid {
			continue
		}
		i := idxs[j]
		signal[i] = v
		hist[i] = null.FloatFrom(line[i].Float64 - v.Float64)
	}
	return line, signal, hist
}
