package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSummary(t *testing.T) {
	r := NewResult()
	r.Count("teams", 14)
	r.Count("contracts", 380)
	r.Count("contracts", 20)
	r.AddErrorf("table %s: boom", "gc")

	assert.Equal(t, "contracts=400 teams=14 errors=1", r.Summary())
}

func TestResultSummaryEmpty(t *testing.T) {
	assert.Equal(t, "errors=0", NewResult().Summary())
}

func TestCheckHeader(t *testing.T) {
	valid := make([]string, len(teamCSVColumns))
	copy(valid, teamCSVColumns)
	require.NoError(t, checkHeader(valid))

	short := valid[:5]
	assert.ErrorContains(t, checkHeader(short), "columns")

	swapped := make([]string, len(valid))
	copy(swapped, valid)
	swapped[0], swapped[1] = swapped[1], swapped[0]
	assert.ErrorContains(t, checkHeader(swapped), "column 1")
}

func TestQuoteSQLite(t *testing.T) {
	assert.Equal(t, `"game_stats"`, quoteSQLite("game_stats"))
	assert.Equal(t, `"bad""name"`, quoteSQLite(`bad"name`))
}
