// Package maintenance runs periodic background tasks as Go tickers. The API
// is already a persistent, long-running service (required for LISTEN/NOTIFY),
// so scheduled work is driven from Go instead of pg_cron.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fantasysyndicate/league-data/internal/cache"
)

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	ProbeInterval time.Duration // Database latency probe
	StatsInterval time.Duration // Pool and cache stats logging
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		ProbeInterval: 1 * time.Minute,
		StatsInterval: 15 * time.Minute,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, pool *pgxpool.Pool, appCache *cache.Cache, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"probe", cfg.ProbeInterval,
		"stats", cfg.StatsInterval)

	tickers := make([]*time.Ticker, 0, 2)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	if cfg.ProbeInterval > 0 {
		t := time.NewTicker(cfg.ProbeInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { probe(ctx, pool, logger) })
	}

	if cfg.StatsInterval > 0 {
		t := time.NewTicker(cfg.StatsInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { logStats(pool, appCache, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

// probe measures round-trip latency to Postgres. Slow probes surface pool
// exhaustion or a struggling database before users notice.
func probe(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) {
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	start := time.Now()
	var n int
	err := pool.QueryRow(probeCtx, "SELECT 1").Scan(&n)
	latency := time.Since(start).Round(time.Millisecond)

	if err != nil {
		logger.Warn("Database probe failed", "latency", latency, "error", err)
		return
	}
	if latency > 500*time.Millisecond {
		logger.Warn("Database probe slow", "latency", latency)
	}
}

// logStats records pool and cache utilization.
func logStats(pool *pgxpool.Pool, appCache *cache.Cache, logger *slog.Logger) {
	s := pool.Stat()
	logger.Info("Pool stats",
		"total_conns", s.TotalConns(),
		"idle_conns", s.IdleConns(),
		"acquired_conns", s.AcquiredConns(),
		"acquire_count", s.AcquireCount(),
		"empty_acquire_count", s.EmptyAcquireCount())
	logger.Info("Cache stats", "cache", appCache.Stats())
}
