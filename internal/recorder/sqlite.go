package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder appends analysis snapshots to a SQLite database.
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

	// WAL mode so external readers can inspect history while we write.
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
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			currency        TEXT,
			current_price   REAL,
			ma5             REAL,
			ma20            REAL,
			ma60            REAL,
			rsi14           REAL,
			macd            REAL,
			macd_signal     REAL,
			macd_hist       REAL,
			bb_upper        REAL,
			bb_middle       REAL,
			bb_lower        REAL,
			volatility      REAL,
			max_drawdown    REAL,
			sharpe          REAL,
			avg_volume      REAL,
			tech_score      INTEGER,
			tech_signal     TEXT,
			position_52w    REAL,
			position_bucket TEXT,
			volume_trend    TEXT,
			momentum        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_symbol_ts ON analysis_snapshots(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordAnalysis inserts one snapshot row. Unavailable metrics are stored
// as NULL, never as zero.
func (r *SQLiteRecorder) RecordAnalysis(snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := snap.History
	ind := snap.Indicators
	sig := snap.Signals

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, currency, current_price,
		 ma5, ma20, ma60, rsi14, macd, macd_signal, macd_hist,
		 bb_upper, bb_middle, bb_lower,
		 volatility, max_drawdown, sharpe, avg_volume,
		 tech_score, tech_signal, position_52w, position_bucket, volume_trend, momentum)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Symbol, h.Currency, h.CurrentPrice,
		ind.MA5, ind.MA20, ind.MA60, ind.RSI14, ind.MACD, ind.MACDSignal, ind.MACDHist,
		ind.BBUpper, ind.BBMiddle, ind.BBLower,
		ind.Volatility, ind.MaxDrawdown, ind.Sharpe, ind.AvgVolume,
		sig.TechScore, sig.TechSignal, sig.Position52w, sig.PositionBucket, sig.VolumeTrend, sig.Momentum,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
