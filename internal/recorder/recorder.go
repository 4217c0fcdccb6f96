package recorder

import (
	"time"

	"github.com/guregu/null/v6"

	"TickerScope/internal/model"
)

// AnalysisSnapshot is one persisted analysis run for one symbol: the final
// value of each standard indicator (null while its window is unfilled) plus
// the scalar performance statistics.
type AnalysisSnapshot struct {
	Symbol      string
	FetchedAt   time.Time
	LastClose   float64
	SMA20       null.Float
	SMA50       null.Float
	EMA20       null.Float
	EMA50       null.Float
	RSI14       null.Float
	MACD        null.Float
	MACDSignal  null.Float
	MACDHist    null.Float
	TotalReturn float64
	Volatility  float64
	Sharpe      null.Float
	MaxDrawdown float64
}

// SnapshotFrom flattens an engine analysis into a persistable snapshot.
func SnapshotFrom(a *model.Analysis, fetchedAt time.Time) *AnalysisSnapshot {
	last := func(name model.IndicatorName) null.Float {
		return a.Indicators[name].Last()
	}
	closes := a.Series.Closes()
	return &AnalysisSnapshot{
		Symbol:      a.Series.Symbol,
		FetchedAt:   fetchedAt,
		LastClose:   closes[len(closes)-1],
		SMA20:       last(model.SMA20),
		SMA50:       last(model.SMA50),
		EMA20:       last(model.EMA20),
		EMA50:       last(model.EMA50),
		RSI14:       last(model.RSI14),
		MACD:        last(model.MACD),
		MACDSignal:  last(model.MACDSignal),
		MACDHist:    last(model.MACDHistogram),
		TotalReturn: a.Summary.TotalReturn,
		Volatility:  a.Summary.Volatility,
		Sharpe:      a.Summary.Sharpe,
		MaxDrawdown: a.Summary.MaxDrawdown,
	}
}

// Recorder persists analysis history.
type Recorder interface {
	RecordAnalysis(snap *AnalysisSnapshot) error
	Close() error
}
