package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/guregu/null/v6"

	"TickerScope/internal/model"
)

// ErrNoData reports that the provider answered but returned no usable bars
// for the symbol. The suffix retry loop treats it as "try the next variant".
var ErrNoData = errors.New("no data returned")

// YahooFetcher implements Fetcher using the Yahoo Finance public API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("yahoo decode: %w", err)
	}
	return nil
}

// FetchDailyBars fetches daily bars covering roughly the requested number of
// trading days, oldest first. Null bars (holidays etc.) are skipped.
func (f *YahooFetcher) FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.Bar, error) {
	// Yahoo range: max "2y" for daily interval
	rng := "2y"
	if days <= 30 {
		rng = "1mo"
	} else if days <= 90 {
		rng = "3mo"
	} else if days <= 180 {
		rng = "6mo"
	} else if days <= 365 {
		rng = "1y"
	}
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=%s",
		url.PathEscape(symbol), rng)

	var chart yahooChart
	if err := f.getJSON(ctx, u, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, ErrNoData)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, ErrNoData)
	}
	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.Bar{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: int64(toFloat(quote.Volume[i])),
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo %s: %w", symbol, ErrNoData)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

// yahooNumber is Yahoo's {"raw": 1.23, "fmt": "1.23"} wrapper; only the raw
// value matters here. A missing field decodes with a nil Raw.
type yahooNumber struct {
	Raw *float64 `json:"raw"`
}

func (n yahooNumber) toNull() null.Float {
	if n.Raw == nil {
		return null.Float{}
	}
	return null.FloatFrom(*n.Raw)
}

// yahooQuoteSummary is the response structure from the quoteSummary API.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"summaryProfile"`
			SummaryDetail struct {
				MarketCap     yahooNumber `json:"marketCap"`
				TrailingPE    yahooNumber `json:"trailingPE"`
				ForwardPE     yahooNumber `json:"forwardPE"`
				DividendYield yahooNumber `json:"dividendYield"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics struct {
				ForwardPE yahooNumber `json:"forwardPE"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchProfile fetches company metadata. Fields Yahoo does not report for the
// symbol stay null in the returned profile.
func (f *YahooFetcher) FetchProfile(ctx context.Context, symbol string) (*model.CompanyProfile, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=summaryProfile%%2CsummaryDetail%%2CdefaultKeyStatistics",
		url.PathEscape(symbol))

	var qs yahooQuoteSummary
	if err := f.getJSON(ctx, u, &qs); err != nil {
		return nil, err
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("yahoo %s profile: %w", symbol, ErrNoData)
	}

	r := qs.QuoteSummary.Result[0]
	profile := &model.CompanyProfile{
		MarketCap:     r.SummaryDetail.MarketCap.toNull(),
		TrailingPE:    r.SummaryDetail.TrailingPE.toNull(),
		DividendYield: r.SummaryDetail.DividendYield.toNull(),
		ForwardPE:     r.SummaryDetail.ForwardPE.toNull(),
	}
	if r.SummaryProfile.Sector != "" {
		profile.Sector = null.StringFrom(r.SummaryProfile.Sector)
	}
	if r.SummaryProfile.Industry != "" {
		profile.Industry = null.StringFrom(r.SummaryProfile.Industry)
	}
	if !profile.ForwardPE.Valid {
		profile.ForwardPE = r.DefaultKeyStatistics.ForwardPE.toNull()
	}
	return profile, nil
}
