package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// teamCSVColumns is the expected header of a team import file, in order.
var teamCSVColumns = []string{
	"team_id", "location", "team_name", "division",
	"logo_url", "banner_url", "primary_color", "secondary_color",
	"accent_color", "neutral_color", "additional_color", "fantrax_url",
}

const upsertTeamSQL = `
	INSERT INTO teams (team_id, location, team_name, division,
	                   logo_url, banner_url, primary_color, secondary_color,
	                   accent_color, neutral_color, additional_color, fantrax_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (team_id) DO UPDATE SET
	    location = EXCLUDED.location,
	    team_name = EXCLUDED.team_name,
	    division = EXCLUDED.division,
	    logo_url = EXCLUDED.logo_url,
	    banner_url = EXCLUDED.banner_url,
	    primary_color = EXCLUDED.primary_color,
	    secondary_color = EXCLUDED.secondary_color,
	    accent_color = EXCLUDED.accent_color,
	    neutral_color = EXCLUDED.neutral_color,
	    additional_color = EXCLUDED.additional_color,
	    fantrax_url = EXCLUDED.fantrax_url`

// SeedTeamsCSV upserts teams from a CSV file. The header row must match
// teamCSVColumns exactly; rows with the wrong field count are skipped and
// reported rather than aborting the import.
func SeedTeamsCSV(ctx context.Context, pool *pgxpool.Pool, path string, logger *slog.Logger) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	result := NewResult()
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.AddErrorf("line %d: %v", line, err)
			continue
		}

		args := make([]interface{}, len(record))
		for i, v := range record {
			args[i] = v
		}
		if _, err := pool.Exec(ctx, upsertTeamSQL, args...); err != nil {
			result.AddErrorf("line %d: upsert team %s: %v", line, record[0], err)
			continue
		}
		result.Count("teams", 1)
	}

	logger.Info("Team import finished", "file", path, "summary", result.Summary())
	return result, nil
}

func checkHeader(header []string) error {
	if len(header) != len(teamCSVColumns) {
		return fmt.Errorf("csv header has %d columns, want %d", len(header), len(teamCSVColumns))
	}
	for i, col := range teamCSVColumns {
		if header[i] != col {
			return fmt.Errorf("csv column %d is %q, want %q", i+1, header[i], col)
		}
	}
	return nil
}
