package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while
	// the scheduler writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			last_close   REAL,
			sma20        REAL,
			sma50        REAL,
			ema20        REAL,
			ema50        REAL,
			rsi14        REAL,
			macd         REAL,
			macd_signal  REAL,
			macd_hist    REAL,
			total_return REAL,
			volatility   REAL,
			sharpe       REAL,
			max_drawdown REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_symbol ON analysis_snapshots(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis inserts one snapshot row. Undefined indicator values are
// stored as SQL NULL, never as zero.
func (r *SQLiteRecorder) RecordAnalysis(snap *AnalysisSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := snap.FetchedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, last_close,
		 sma20, sma50, ema20, ema50, rsi14,
		 macd, macd_signal, macd_hist,
		 total_return, volatility, sharpe, max_drawdown)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		ts.Unix(), snap.Symbol, snap.LastClose,
		snap.SMA20, snap.SMA50, snap.EMA20, snap.EMA50, snap.RSI14,
		snap.MACD, snap.MACDSignal, snap.MACDHist,
		snap.TotalReturn, snap.Volatility, snap.Sharpe, snap.MaxDrawdown,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
