package model

import "github.com/guregu/null/v6"

// IndicatorName identifies a computable technical indicator series.
type IndicatorName string

const (
	SMA20         IndicatorName = "SMA20"
	SMA50         IndicatorName = "SMA50"
	EMA20         IndicatorName = "EMA20"
	EMA50         IndicatorName = "EMA50"
	RSI14         IndicatorName = "RSI14"
	MACD          IndicatorName = "MACD"
	MACDSignal    IndicatorName = "MACD_SIGNAL"
	MACDHistogram IndicatorName = "MACD_HIST"
)

// StandardIndicators is the default set computed when a request names none.
// Requesting MACD yields the signal and histogram series as well.
func StandardIndicators() []IndicatorName {
	return []IndicatorName{SMA20, SMA50, EMA20, EMA50, RSI14, MACD}
}

// Series is a named indicator series aligned one-to-one with the bars that
// produced it. An invalid (null) value marks a position where the indicator's
// lookback window is not yet filled — never zero, never a guess.
type Series struct {
	Name   IndicatorName `json:"name"`
	Values []null.Float  `json:"values"`
}

// Last returns the most recent value of the series; invalid if the series is
// empty or the final position is undefined.
func (s Series) Last() null.Float {
	if len(s.Values) == 0 {
		return null.Float{}
	}
	return s.Values[len(s.Values)-1]
}
