package model

// Analysis is the computation engine's full output for one price series:
// every requested indicator series plus the performance summary.
type Analysis struct {
	Series     *PriceSeries
	Indicators map[IndicatorName]Series
	Summary    PerformanceSummary
}
