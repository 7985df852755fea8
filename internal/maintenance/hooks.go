package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalyzeTables refreshes planner statistics after a bulk load. COPY-based
// migration can move entire tables at once, leaving the planner with stale
// row estimates until autovacuum catches up.
func AnalyzeTables(ctx context.Context, pool *pgxpool.Pool, tables []string, logger *slog.Logger) {
	for _, table := range tables {
		start := time.Now()
		_, err := pool.Exec(ctx, "ANALYZE "+pgx.Identifier{table}.Sanitize())
		dur := time.Since(start).Round(time.Millisecond)

		if err != nil {
			logger.Warn("Failed to analyze table", "table", table, "duration", dur, "error", err)
			continue
		}
		logger.Info("Analyzed table", "table", table, "duration", dur)
	}
}
