// Package analyzer composes the computation pipeline: raw bars are normalized
// once, then the indicator engine and the performance analyzer run over the
// resulting series. The two are independent pure functions, so they are
// evaluated in parallel goroutines purely as an optimization.
package analyzer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"TickerScope/internal/indicator"
	"TickerScope/internal/model"
	"TickerScope/internal/performance"
	"TickerScope/internal/series"
)

// Options selects which indicators to compute and the annual risk-free rate
// for the Sharpe ratio. An empty indicator set means the standard set.
type Options struct {
	Indicators   []model.IndicatorName
	RiskFreeRate float64
}

// Run normalizes raw into a PriceSeries and computes the full analysis.
// Validation errors (series.InvalidBarError, series.ErrMalformedSeries) are
// the only failure modes; insufficient history for an indicator just leaves
// that series undefined.
func Run(ctx context.Context, symbol string, raw []model.Bar, opts Options) (*model.Analysis, error) {
	ps, err := series.Normalize(symbol, raw)
	if err != nil {
		return nil, err
	}

	set := opts.Indicators
	if len(set) == 0 {
		set = model.StandardIndicators()
	}

	analysis := &model.Analysis{Series: ps}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		analysis.Indicators = indicator.Compute(ps, set)
		return nil
	})
	g.Go(func() error {
		analysis.Summary = performance.Analyze(ps, opts.RiskFreeRate)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return analysis, nil
}
