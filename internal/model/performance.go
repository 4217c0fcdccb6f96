package model

import "github.com/guregu/null/v6"

// PerformanceSummary holds the scalar performance and risk statistics for one
// price series, plus the raw return distribution for external visualization.
// Created once per analysis request; never mutated afterwards.
type PerformanceSummary struct {
	// TotalReturn is close[last]/close[first] - 1.
	TotalReturn float64 `json:"total_return"`
	// Volatility is the standard deviation of daily returns scaled by √252.
	Volatility float64 `json:"volatility"`
	// Sharpe is the annualized mean return over annualized volatility.
	// Invalid when volatility is exactly zero.
	Sharpe null.Float `json:"sharpe"`
	// MaxDrawdown is the largest peak-to-trough decline, <= 0 (0 = none).
	MaxDrawdown float64 `json:"max_drawdown"`
	// Returns is the daily return series the statistics were computed from.
	// The analyzer does not bucket it; rendering is the caller's concern.
	Returns []float64 `json:"returns"`
}
