package collector

import (
	"context"
	"errors"
	"testing"

	"TickerScope/internal/model"
)

// recordingFetcher tracks which symbols were tried.
type recordingFetcher struct {
	MockFetcher
	tried []string
}

func (r *recordingFetcher) FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.Bar, error) {
	r.tried = append(r.tried, symbol)
	return r.MockFetcher.FetchDailyBars(ctx, symbol, days)
}

func TestCollect_FirstSuffixWins(t *testing.T) {
	f := &recordingFetcher{MockFetcher: MockFetcher{
		BasePrice: 100,
		Symbols:   map[string]bool{"TCS.NS": true},
	}}
	c := NewCollector(f)

	md, err := c.Collect(context.Background(), "TCS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md.Symbol != "TCS.NS" {
		t.Errorf("resolved symbol: got %s, want TCS.NS", md.Symbol)
	}
	if len(f.tried) != 1 {
		t.Errorf("expected 1 attempt, got %d: %v", len(f.tried), f.tried)
	}
	if len(md.Bars) == 0 {
		t.Error("expected bars")
	}
	if md.Profile == nil {
		t.Error("expected profile on successful resolution")
	}
}

func TestCollect_FallsThroughSuffixes(t *testing.T) {
	f := &recordingFetcher{MockFetcher: MockFetcher{
		BasePrice: 100,
		Symbols:   map[string]bool{"AAPL": true}, // only the bare symbol resolves
	}}
	c := NewCollector(f)

	md, err := c.Collect(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md.Symbol != "AAPL" {
		t.Errorf("resolved symbol: got %s, want AAPL", md.Symbol)
	}
	want := []string{"AAPL.NS", "AAPL.BO", "AAPL"}
	if len(f.tried) != len(want) {
		t.Fatalf("attempts: got %v, want %v", f.tried, want)
	}
	for i := range want {
		if f.tried[i] != want[i] {
			t.Errorf("attempt %d: got %s, want %s", i, f.tried[i], want[i])
		}
	}
}

func TestCollect_AllSuffixesFail(t *testing.T) {
	f := &recordingFetcher{MockFetcher: MockFetcher{
		Symbols: map[string]bool{}, // nothing resolves
	}}
	c := NewCollector(f)

	_, err := c.Collect(context.Background(), "NOPE")
	if !errors.Is(err, ErrTickerNotFound) {
		t.Fatalf("expected ErrTickerNotFound, got %v", err)
	}
	// Bounded retry: exactly one attempt per suffix, never more.
	if len(f.tried) != len(DefaultSuffixes) {
		t.Errorf("attempts: got %d, want %d", len(f.tried), len(DefaultSuffixes))
	}
}

func TestCollect_ProfileFailureIsNotFatal(t *testing.T) {
	f := &profileFailingFetcher{}
	c := NewCollector(f)

	md, err := c.Collect(context.Background(), "TCS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md.Profile != nil {
		t.Error("expected nil profile when the profile fetch fails")
	}
	if len(md.Bars) == 0 {
		t.Error("bars should still be returned")
	}
}

type profileFailingFetcher struct{}

func (p *profileFailingFetcher) Name() string { return "profile-failing" }

func (p *profileFailingFetcher) FetchDailyBars(_ context.Context, _ string, days int) ([]model.Bar, error) {
	return GenerateMockBars(100, days), nil
}

func (p *profileFailingFetcher) FetchProfile(_ context.Context, _ string) (*model.CompanyProfile, error) {
	return nil, errors.New("quoteSummary unavailable")
}
