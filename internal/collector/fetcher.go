package collector

import (
	"context"

	"TickerScope/internal/model"
)

// Fetcher defines the interface for fetching market data for one
// fully-qualified ticker symbol (exchange suffix already applied).
type Fetcher interface {
	// FetchDailyBars returns up to days of daily bars, oldest first.
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.Bar, error)
	// FetchProfile returns company metadata. Fields missing upstream come
	// back null, never zeroed.
	FetchProfile(ctx context.Context, symbol string) (*model.CompanyProfile, error)
	Name() string
}
