package collector

import (
	"context"
	"time"

	"github.com/guregu/null/v6"

	"TickerScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	BasePrice float64
	Bars      []model.Bar
	Profile   *model.CompanyProfile
	// Symbols limits which symbols resolve; empty means all succeed.
	Symbols map[string]bool
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, days int) ([]model.Bar, error) {
	if m.Symbols != nil && !m.Symbols[symbol] {
		return nil, ErrNoData
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.BasePrice, days), nil
}

func (m *MockFetcher) FetchProfile(_ context.Context, symbol string) (*model.CompanyProfile, error) {
	if m.Symbols != nil && !m.Symbols[symbol] {
		return nil, ErrNoData
	}
	if m.Profile != nil {
		return m.Profile, nil
	}
	return &model.CompanyProfile{
		Sector:   null.StringFrom("Technology"),
		Industry: null.StringFrom("Software"),
	}, nil
}

// GenerateMockBars produces a gently trending daily series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.Bar {
	if basePrice <= 0 {
		basePrice = 100
	}
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   time.Now().UTC().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
