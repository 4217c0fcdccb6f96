// Package performance computes scalar performance and risk statistics over a
// validated price series. All statistics are independent pure computations
// over the same return series; nothing is shared or cached between calls.
package performance

import (
	"math"

	"github.com/guregu/null/v6"
	"gonum.org/v1/gonum/stat"

	"TickerScope/internal/model"
)

// TradingDaysPerYear is the annualization basis for daily return statistics.
const TradingDaysPerYear = 252

// Analyze computes the performance summary for ps. riskFreeRate is the annual
// risk-free rate used in the Sharpe numerator (0 disables it). When the
// return series has zero variance the Sharpe ratio is reported as undefined
// rather than NaN or infinity.
func Analyze(ps *model.PriceSeries, riskFreeRate float64) model.PerformanceSummary {
	closes := ps.Closes()
	returns := ps.Returns()

	summary := model.PerformanceSummary{
		TotalReturn: closes[len(closes)-1]/closes[0] - 1,
		MaxDrawdown: maxDrawdown(closes),
		Returns:     returns,
	}

	stdev := 0.0
	if len(returns) > 1 {
		stdev = stat.StdDev(returns, nil)
	}
	summary.Volatility = stdev * math.Sqrt(TradingDaysPerYear)
	if stdev > 0 {
		mean := stat.Mean(returns, nil)
		sharpe := (mean*TradingDaysPerYear - riskFreeRate) / summary.Volatility
		summary.Sharpe = null.FloatFrom(sharpe)
	}
	return summary
}

// maxDrawdown tracks the running peak close in one pass and returns the
// largest observed peak-to-trough percentage decline, as a number <= 0.
func maxDrawdown(closes []float64) float64 {
	peak := closes[0]
	worst := 0.0
	for _, c := range closes[1:] {
		if c > peak {
			peak = c
			continue
		}
		if dd := (c - peak) / peak; dd < worst {
			worst = dd
		}
	}
	return worst
}
