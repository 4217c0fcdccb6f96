package model

import "github.com/guregu/null/v6"

// CompanyProfile carries company metadata passed through from the market data
// provider. Every field may be absent for a given ticker; absent is encoded
// as a null value, never as zero or a sentinel number.
type CompanyProfile struct {
	Sector        null.String `json:"sector"`
	Industry      null.String `json:"industry"`
	MarketCap     null.Float  `json:"market_cap"`
	TrailingPE    null.Float  `json:"trailing_pe"`
	ForwardPE     null.Float  `json:"forward_pe"`
	DividendYield null.Float  `json:"dividend_yield"`
}
