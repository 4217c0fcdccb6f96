package model

import "time"

// Bar represents a single daily candlestick observation.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Day returns the bar's calendar day truncated to UTC midnight.
// Two bars belong to the same trading day iff their Day values are equal.
func (b Bar) Day() time.Time {
	y, m, d := b.Date.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PriceSeries holds validated daily bars, ascending by date with no
// duplicate days. Construct one via series.Normalize; downstream
// analyzers assume the invariants hold and never re-check them.
type PriceSeries struct {
	Symbol string
	Bars   []Bar
}

// Len returns the number of bars.
func (ps *PriceSeries) Len() int { return len(ps.Bars) }

// Closes extracts the closing prices, aligned with Bars.
func (ps *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(ps.Bars))
	for i, b := range ps.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Returns derives the simple daily return series r[i] = close[i+1]/close[i] - 1.
// Length is Len()-1. The slice is computed fresh on every call; nothing is
// cached between requests.
func (ps *PriceSeries) Returns() []float64 {
	if len(ps.Bars) < 2 {
		return nil
	}
	returns := make([]float64, len(ps.Bars)-1)
	for i := 1; i < len(ps.Bars); i++ {
		returns[i-1] = ps.Bars[i].Close/ps.Bars[i-1].Close - 1
	}
	return returns
}
