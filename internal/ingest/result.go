// Package ingest loads league data into Postgres: team seeding from CSV,
// credential management, and one-shot migration from the legacy SQLite file.
package ingest

import (
	"fmt"
	"sort"
	"strings"
)

// Result tracks per-table row counts and errors from an ingest operation.
type Result struct {
	Upserted map[string]int
	Errors   []string
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{Upserted: make(map[string]int)}
}

// Count records n rows written to a table.
func (r *Result) Count(table string, n int) {
	r.Upserted[table] += n
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary, tables in name order.
func (r *Result) Summary() string {
	tables := make([]string, 0, len(r.Upserted))
	for t := range r.Upserted {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	var b strings.Builder
	for _, t := range tables {
		fmt.Fprintf(&b, "%s=%d ", t, r.Upserted[t])
	}
	fmt.Fprintf(&b, "errors=%d", len(r.Errors))
	return b.String()
}
