// Package server exposes the analysis pipeline over HTTP. It returns plain
// data records; formatting, charting, and localization belong to the client.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"TickerScope/internal/collector"
)

// Server holds the HTTP layer's collaborators.
type Server struct {
	Collector    *collector.Collector
	RiskFreeRate float64 // default when a request does not pass rf
}

// New creates a Server around the given collector.
func New(col *collector.Collector, riskFreeRate float64) *Server {
	return &Server{Collector: col, RiskFreeRate: riskFreeRate}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router(allowOrigins []string) *gin.Engine {
	engine := gin.Default()

	if len(allowOrigins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     allowOrigins,
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	engine.GET("/healthz", s.health)
	v1 := engine.Group("/api/v1")
	v1.GET("/analysis/:ticker", s.getAnalysis)
	v1.GET("/candles/:ticker", s.getCandles)

	return engine
}

// HTTPServer wraps the router in an http.Server with sane timeouts.
func (s *Server) HTTPServer(addr string, allowOrigins []string) *http.Server {
	return &http.Server{
		Addr:           addr,
		Handler:        s.Router(allowOrigins),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
