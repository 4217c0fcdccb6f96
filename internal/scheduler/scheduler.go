// Package scheduler periodically re-analyzes the configured watchlist and
// records a snapshot per symbol, building up history for later review.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"TickerScope/internal/analyzer"
	"TickerScope/internal/collector"
	"TickerScope/internal/recorder"
)

// refreshConcurrency bounds how many watchlist symbols are fetched at once,
// to stay polite with the upstream provider.
const refreshConcurrency = 4

// Scheduler manages the cron-driven watchlist refresh.
type Scheduler struct {
	Cron         *cron.Cron
	Collector    *collector.Collector
	Recorder     recorder.Recorder
	Watchlist    []string
	RiskFreeRate float64
	Ctx          context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, rec recorder.Recorder, watchlist []string, riskFreeRate float64) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Collector:    col,
		Recorder:     rec,
		Watchlist:    watchlist,
		RiskFreeRate: riskFreeRate,
		Ctx:          ctx,
	}
}

// Register registers the refresh task under the given cron expression.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RefreshNow executes the refresh task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RefreshNow() {
	s.refreshTask()
}

// refreshTask re-analyzes every watchlist symbol. Per-symbol failures are
// logged and skipped so one bad ticker never blocks the rest.
func (s *Scheduler) refreshTask() {
	if len(s.Watchlist) == 0 {
		return
	}
	log.Printf("[INFO] refreshing %d watchlist symbols", len(s.Watchlist))

	g, ctx := errgroup.WithContext(s.Ctx)
	g.SetLimit(refreshConcurrency)
	for _, ticker := range s.Watchlist {
		g.Go(func() error {
			if err := s.refreshOne(ctx, ticker); err != nil {
				log.Printf("[ERROR] refresh %s: %v", ticker, err)
			}
			return nil
		})
	}
	_ = g.Wait() // per-symbol errors are logged, never propagated
	log.Println("[INFO] watchlist refresh complete")
}

func (s *Scheduler) refreshOne(ctx context.Context, ticker string) error {
	md, err := s.Collector.Collect(ctx, ticker)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	a, err := analyzer.Run(ctx, md.Symbol, md.Bars, analyzer.Options{RiskFreeRate: s.RiskFreeRate})
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	if err := s.Recorder.RecordAnalysis(recorder.SnapshotFrom(a, md.FetchedAt)); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return nil
}
