package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"TickerScope/internal/analyzer"
	"TickerScope/internal/collector"
	"TickerScope/internal/model"
	"TickerScope/internal/series"
)

// analysisResponse is the full report for one ticker: bars, indicator series
// aligned to them, performance summary, and pass-through company profile.
type analysisResponse struct {
	Symbol     string                               `json:"symbol"`
	FetchedAt  time.Time                            `json:"fetched_at"`
	Candles    []model.Bar                          `json:"candles"`
	Indicators map[model.IndicatorName]model.Series `json:"indicators"`
	Summary    model.PerformanceSummary             `json:"summary"`
	Profile    *model.CompanyProfile                `json:"profile,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// getAnalysis handles GET /api/v1/analysis/:ticker?rf=0.02&indicators=SMA20,RSI14
func (s *Server) getAnalysis(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "ticker is required"})
		return
	}

	rf := s.RiskFreeRate
	if v := c.Query("rf"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "rf must be a number"})
			return
		}
		rf = parsed
	}
	var set []model.IndicatorName
	if v := c.Query("indicators"); v != "" {
		for _, name := range strings.Split(v, ",") {
			set = append(set, model.IndicatorName(strings.ToUpper(strings.TrimSpace(name))))
		}
	}

	md, err := s.Collector.Collect(c.Request.Context(), ticker)
	if err != nil {
		// Provider-level "no data for this ticker" is distinct from the
		// engine-level "not enough history" below.
		if errors.Is(err, collector.ErrTickerNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "no data available for ticker " + ticker})
			return
		}
		c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	a, err := analyzer.Run(c.Request.Context(), md.Symbol, md.Bars, analyzer.Options{
		Indicators:   set,
		RiskFreeRate: rf,
	})
	if err != nil {
		if errors.Is(err, series.ErrMalformedSeries) {
			c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "insufficient data for " + md.Symbol})
			return
		}
		var invalid *series.InvalidBarError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadGateway, errorResponse{Error: "provider returned invalid data: " + invalid.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, analysisResponse{
		Symbol:     md.Symbol,
		FetchedAt:  md.FetchedAt,
		Candles:    a.Series.Bars,
		Indicators: a.Indicators,
		Summary:    a.Summary,
		Profile:    md.Profile,
	})
}

// candlesResponse carries just the validated bars for chart rendering.
type candlesResponse struct {
	Symbol    string      `json:"symbol"`
	FetchedAt time.Time   `json:"fetched_at"`
	Candles   []model.Bar `json:"candles"`
}

// getCandles handles GET /api/v1/candles/:ticker
func (s *Server) getCandles(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "ticker is required"})
		return
	}

	md, err := s.Collector.Collect(c.Request.Context(), ticker)
	if err != nil {
		if errors.Is(err, collector.ErrTickerNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "no data available for ticker " + ticker})
			return
		}
		c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	ps, err := series.Normalize(md.Symbol, md.Bars)
	if err != nil {
		if errors.Is(err, series.ErrMalformedSeries) {
			c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "insufficient data for " + md.Symbol})
			return
		}
		c.JSON(http.StatusBadGateway, errorResponse{Error: "provider returned invalid data: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, candlesResponse{
		Symbol:    md.Symbol,
		FetchedAt: md.FetchedAt,
		Candles:   ps.Bars,
	})
}
