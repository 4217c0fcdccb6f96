package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"TickerScope/internal/collector"
	"TickerScope/internal/config"
	"TickerScope/internal/recorder"
	"TickerScope/internal/scheduler"
	"TickerScope/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TickerScope starting...")

	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] .env not loaded: %v", err)
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.Provider == "mock" {
		fetcher = &collector.MockFetcher{BasePrice: 100}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher)
	col.Suffixes = cfg.DataSource.Suffixes
	col.Days = cfg.DataSource.HistoryDays

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0o755); err != nil {
			log.Printf("[WARN] create data dir: %v", err)
		}
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler for the watchlist refresh
	if len(cfg.Watchlist) > 0 {
		sched := scheduler.NewScheduler(ctx, col, rec, cfg.Watchlist, cfg.Analysis.RiskFreeRate)
		if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
			log.Fatalf("[FATAL] register cron task: %v", err)
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, refreshing watchlist now")
			go sched.RefreshNow()
		}
	} else {
		log.Println("[INFO] watchlist empty, scheduler disabled")
	}

	// Start HTTP server
	srv := server.New(col, cfg.Analysis.RiskFreeRate)
	httpSrv := srv.HTTPServer(cfg.Server.Addr, cfg.Server.AllowOrigins)
	go func() {
		log.Printf("[INFO] HTTP server listening on %s", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] TickerScope is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutCancel()
	if err := httpSrv.Shutdown(shutCtx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	log.Println("[INFO] TickerScope stopped")
}
