package collector

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"TickerScope/internal/model"
)

// DefaultSuffixes is the ordered list of exchange-suffix candidates tried for
// a bare ticker: NSE, BSE, then the symbol as-is for international listings.
var DefaultSuffixes = []string{".NS", ".BO", ""}

// DefaultHistoryDays is how much daily history a collection requests.
const DefaultHistoryDays = 365

// ErrTickerNotFound reports that no suffix variant produced data. The
// analysis engine is never invoked in that case; callers surface this
// directly as "no data available for this ticker".
var ErrTickerNotFound = errors.New("ticker not found on any exchange")

// MarketData is everything the provider hands to the rest of the system for
// one resolved ticker: raw bars (not yet validated) plus company metadata.
type MarketData struct {
	Symbol    string // resolved symbol including exchange suffix
	Bars      []model.Bar
	Profile   *model.CompanyProfile
	FetchedAt time.Time
}

// Collector resolves a ticker against a bounded suffix list and gathers the
// data the analysis engine needs.
type Collector struct {
	Fetcher  Fetcher
	Suffixes []string
	Days     int
}

// NewCollector creates a Collector with the default suffix list and history window.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{
		Fetcher:  fetcher,
		Suffixes: DefaultSuffixes,
		Days:     DefaultHistoryDays,
	}
}

// Collect tries ticker+suffix in order until one variant yields bars, then
// fetches the company profile for the resolved symbol. The profile is best
// effort: a failure there is logged, not fatal. When every variant fails the
// result is ErrTickerNotFound.
func (c *Collector) Collect(ctx context.Context, ticker string) (*MarketData, error) {
	suffixes := c.Suffixes
	if len(suffixes) == 0 {
		suffixes = DefaultSuffixes
	}
	days := c.Days
	if days <= 0 {
		days = DefaultHistoryDays
	}

	for _, suffix := range suffixes {
		full := ticker + suffix
		bars, err := c.Fetcher.FetchDailyBars(ctx, full, days)
		if err != nil {
			log.Printf("[WARN] fetch %s via %s: %v", full, c.Fetcher.Name(), err)
			continue
		}
		if len(bars) == 0 {
			continue
		}

		md := &MarketData{Symbol: full, Bars: bars, FetchedAt: time.Now()}
		profile, err := c.Fetcher.FetchProfile(ctx, full)
		if err != nil {
			log.Printf("[WARN] profile %s: %v", full, err)
		} else {
			md.Profile = profile
		}
		return md, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
}
