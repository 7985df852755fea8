package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// MigrateTables lists every table the legacy SQLite file carries, in
// dependency order so foreign keys resolve during the copy.
var MigrateTables = []string{
	"teams",
	"players",
	"player_ids",
	"roster",
	"contracts",
	"retention",
	"prospects",
	"trades",
	"awards",
	"gc",
	"game_stats",
	"credentials",
}

// MigrateSQLite copies tables from the legacy SQLite database into Postgres.
// Each table is replaced wholesale inside one transaction: delete, then bulk
// copy. Column names are taken from the SQLite side, so both schemas must
// agree. tables may be nil to copy everything in MigrateTables.
func MigrateSQLite(ctx context.Context, pool *pgxpool.Pool, sqlitePath string, tables []string, logger *slog.Logger) (*Result, error) {
	src, err := sql.Open("sqlite", sqlitePath+"?_pragma=busy_timeout(5000)&mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", sqlitePath, err)
	}
	defer src.Close()

	if err := src.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if len(tables) == 0 {
		tables = MigrateTables
	}

	result := NewResult()
	for _, table := range tables {
		n, err := migrateTable(ctx, pool, src, table)
		if err != nil {
			result.AddErrorf("table %s: %v", table, err)
			logger.Error("Table migration failed", "table", table, "error", err)
			continue
		}
		result.Count(table, n)
		logger.Info("Table migrated", "table", table, "rows", n)
	}
	return result, nil
}

func migrateTable(ctx context.Context, pool *pgxpool.Pool, src *sql.DB, table string) (int, error) {
	cols, rows, err := readAll(ctx, src, table)
	if err != nil {
		return 0, err
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM "+pgx.Identifier{table}.Sanitize()); err != nil {
		return 0, fmt.Errorf("clear target: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{table}, cols, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return int(copied), nil
}

// readAll pulls an entire SQLite table into memory. The legacy file is a
// few megabytes, so buffering is fine.
func readAll(ctx context.Context, src *sql.DB, table string) ([]string, [][]interface{}, error) {
	rows, err := src.QueryContext(ctx, "SELECT * FROM "+quoteSQLite(table))
	if err != nil {
		return nil, nil, fmt.Errorf("read source: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("columns: %w", err)
	}

	var all [][]interface{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan: %w", err)
		}
		all = append(all, values)
	}
	return cols, all, rows.Err()
}

func quoteSQLite(table string) string {
	return `"` + strings.ReplaceAll(table, `"`, `""`) + `"`
}
