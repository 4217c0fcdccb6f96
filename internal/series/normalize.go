// Package series turns raw provider bars into a validated PriceSeries.
// It is the sole producer of valid series; the indicator and performance
// packages assume their input already passed through Normalize.
package series

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"TickerScope/internal/model"
)

// ErrMalformedSeries reports that fewer than 2 usable bars remain after
// validation and deduplication. Callers surface it as "insufficient data".
var ErrMalformedSeries = errors.New("malformed series: fewer than 2 usable bars")

// InvalidBarError reports a single bar that violates price or volume sanity
// constraints. It is fatal to the whole series; no partial series is returned.
type InvalidBarError struct {
	Date   time.Time
	Reason string
}

func (e *InvalidBarError) Error() string {
	return fmt.Sprintf("invalid bar on %s: %s", e.Date.Format("2006-01-02"), e.Reason)
}

// Normalize validates, sorts, and deduplicates raw bars into a PriceSeries.
// Bars are ordered ascending by calendar day; exact-duplicate days keep the
// last-seen record, so a re-fetched bar supersedes an earlier one.
func Normalize(symbol string, raw []model.Bar) (*model.PriceSeries, error) {
	for i := range raw {
		if err := validateBar(raw[i]); err != nil {
			return nil, err
		}
	}

	sorted := make([]model.Bar, len(raw))
	copy(sorted, raw)
	// Stable sort preserves input order within a day so keep-last works.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Day().Before(sorted[j].Day())
	})

	bars := make([]model.Bar, 0, len(sorted))
	for _, b := range sorted {
		if n := len(bars); n > 0 && bars[n-1].Day().Equal(b.Day()) {
			bars[n-1] = b
			continue
		}
		bars = append(bars, b)
	}

	if len(bars) < 2 {
		return nil, ErrMalformedSeries
	}
	return &model.PriceSeries{Symbol: symbol, Bars: bars}, nil
}

func validateBar(b model.Bar) error {
	switch {
	case b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0:
		return &InvalidBarError{Date: b.Day(), Reason: "non-positive price"}
	case b.High < b.Low:
		return &InvalidBarError{Date: b.Day(), Reason: "high below low"}
	case b.Open < b.Low || b.Open > b.High:
		return &InvalidBarError{Date: b.Day(), Reason: "open outside high-low range"}
	case b.Close < b.Low || b.Close > b.High:
		return &InvalidBarError{Date: b.Day(), Reason: "close outside high-low range"}
	case b.Volume < 0:
		return &InvalidBarError{Date: b.Day(), Reason: "negative volume"}
	}
	return nil
}
