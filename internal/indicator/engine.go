// Package indicator computes technical indicator series over a validated
// price series. Every output series has the same length as the input, with
// null values where the lookback window is not yet filled. The engine never
// fails on insufficient-but-valid input; malformed input is the normalizer's
// problem, caught upstream.
package indicator

import "TickerScope/internal/model"

// Standard lookback windows and MACD parameterization.
const (
	ShortWindow = 20
	LongWindow  = 50
	RSIWindow   = 14
	MACDFast    = 12
	MACDSlow    = 26
	MACDSignalP = 9
)

// Compute evaluates the requested indicators over ps. Requesting any of the
// MACD series produces all three (line, signal, histogram). Unknown names are
// ignored. The result maps indicator name to its aligned series.
func Compute(ps *model.PriceSeries, set []model.IndicatorName) map[model.IndicatorName]model.Series {
	closes := ps.Closes()
	out := make(map[model.IndicatorName]model.Series, len(set))

	for _, name := range set {
		if _, done := out[name]; done {
			continue
		}
		switch name {
		case model.SMA20:
			out[name] = model.Series{Name: name, Values: SMA(closes, ShortWindow)}
		case model.SMA50:
			out[name] = model.Series{Name: name, Values: SMA(closes, LongWindow)}
		case model.EMA20:
			out[name] = model.Series{Name: name, Values: EMA(closes, ShortWindow)}
		case model.EMA50:
			out[name] = model.Series{Name: name, Values: EMA(closes, LongWindow)}
		case model.RSI14:
			out[name] = model.Series{Name: name, Values: RSI(closes, RSIWindow)}
		case model.MACD, model.MACDSignal, model.MACDHistogram:
			line, signal, hist := MACDLines(closes, MACDFast, MACDSlow, MACDSignalP)
			out[model.MACD] = model.Series{Name: model.MACD, Values: line}
			out[model.MACDSignal] = model.Series{Name: model.MACDSignal, Values: signal}
			out[model.MACDHistogram] = model.Series{Name: model.MACDHistogram, Values: hist}
		}
	}
	return out
}
