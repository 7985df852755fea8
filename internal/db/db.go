// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fantasysyndicate/league-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers all statements the API uses. Prepared
// statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Auth
		"credentials_by_username": `
			SELECT username, email, name, password
			FROM credentials
			WHERE username = $1`,

		// Teams
		"list_teams": `
			SELECT team_id, location || ' ' || team_name AS team_name, division,
			       logo_url, banner_url, primary_color, secondary_color,
			       accent_color, neutral_color, additional_color, fantrax_url
			FROM teams
			ORDER BY location || ' ' || team_name`,
		"team_by_id": `
			SELECT team_id, location, team_name, division,
			       logo_url, banner_url, primary_color, secondary_color,
			       accent_color, neutral_color, additional_color, fantrax_url
			FROM teams
			WHERE team_id = $1`,

		// Roster — active contracts only; pending-release and expired
		// contracts are filtered here, matching the cap eligibility rule.
		"roster_by_team": `
			SELECT p.player_id, p.full_name, p.position_full, p.mlb_team, p.age,
			       c.salary::numeric::float8, c.end_year,
			       EXISTS (SELECT 1 FROM prospects pr WHERE pr.player_id = p.player_id) AS is_prospect,
			       CASE WHEN c.status LIKE '%UFA%' THEN 'UFA'
			            WHEN c.status LIKE '%RO%' THEN 'Rookie Contract'
			            ELSE '' END AS contract_type
			FROM players p
			JOIN contracts c ON c.player_id = p.player_id
			WHERE c.team_id = $1
			  AND c.status NOT LIKE '%PR%'
			  AND c.end_year > $2
			ORDER BY p.full_name`,

		// Cap inputs — unfiltered rows; eligibility is applied in Go by the
		// cap ledger so the rule lives in exactly one place.
		"contracts_by_team": `
			SELECT player_id, team_id, salary::numeric::float8, end_year, COALESCE(status, '')
			FROM contracts
			WHERE team_id = $1`,
		"retention_by_team": `
			SELECT team_id, player_id, retained_salary::numeric::float8
			FROM retention
			WHERE team_id = $1`,

		// Prospects
		"prospects_by_team": `
			SELECT pr.player_id, pr.player_name, pr.mlb_team, pr.position, pr.age,
			       pr.options, pr.acquisition, pr.overall_pick, pr.draft_yr,
			       pr.bid::numeric::float8, pr.rookie_eligible
			FROM prospects pr
			WHERE pr.team_id = $1
			ORDER BY pr.player_name`,

		// Trades
		"trades_by_team": `
			SELECT player_name, mlb_team, position, from_name, to_name,
			       trade_type, asset_type, trade_date
			FROM trades
			WHERE team_id_to = $1 OR team_id_from = $1
			ORDER BY trade_date DESC, trade_id_grouped DESC`,

		// Awards
		"awards_by_team": `
			SELECT team_id, season, award_id, award_text
			FROM awards
			WHERE team_id = $1
			ORDER BY season DESC, award_id ASC`,

		// Griffey Coin balance
		"gc_balance": `
			SELECT gc_balance::numeric::float8
			FROM gc
			WHERE team_id = $1`,

		// Players — profile dropdown: rostered, non-prospect
		"players_by_team": `
			SELECT p.player_id, p.full_name
			FROM roster r
			JOIN players p ON r.player_id = p.player_id
			LEFT JOIN prospects pr ON pr.player_id = p.player_id
			WHERE r.team_id = $1
			  AND pr.player_id IS NULL
			ORDER BY p.full_name`,
		"player_by_id": `
			SELECT p.player_id, p.full_name, COALESCE(p.is_pitcher, false)
			FROM players p
			WHERE p.player_id = $1`,
		"player_contracts": `
			SELECT salary::numeric::float8, end_year
			FROM contracts
			WHERE player_id = $1
			ORDER BY end_year`,
		"player_bref_id": `
			SELECT bref_id
			FROM player_ids
			WHERE player_id = $1`,

		// Career stats — per-season sums across hitting and pitching
		// categories. One query serves both; the handler picks the column
		// set from the pitcher flag.
		"player_career_stats": `
			SELECT gs.season,
			       COALESCE(SUM(gs.fpts), 0)::float8            AS points,
			       COALESCE(SUM(gs."1b"), 0)::int               AS singles,
			       COALESCE(SUM(gs."2b"), 0)::int               AS doubles,
			       COALESCE(SUM(gs."3b"), 0)::int               AS triples,
			       COALESCE(SUM(gs.hr), 0)::int                 AS hr,
			       COALESCE(SUM(gs.bb_hbp), 0)::int             AS bb_hbp,
			       COALESCE(SUM(gs.so), 0)::int                 AS so,
			       COALESCE(SUM(gs.sb), 0)::int                 AS sb,
			       COALESCE(SUM(gs.cs), 0)::int                 AS cs,
			       COALESCE(SUM(gs.gidp_h), 0)::int             AS gidp_h,
			       COALESCE(SUM(gs.cyc), 0)::int                AS cyc,
			       COALESCE(SUM(gs.mobg), 0)::int               AS mobg,
			       COALESCE(SUM(gs.r), 0)::int                  AS r,
			       COALESCE(SUM(gs.rbi), 0)::int                AS rbi,
			       COALESCE(SUM(gs.cg), 0)::int                 AS cg,
			       COALESCE(SUM(gs.sho), 0)::int                AS sho,
			       COALESCE(SUM(gs.w), 0)::int                  AS w,
			       COALESCE(SUM(gs.l), 0)::int                  AS l,
			       COALESCE(SUM(gs.sv), 0)::int                 AS sv,
			       COALESCE(SUM(gs.hld), 0)::int                AS hld,
			       COALESCE(SUM(gs.ip), 0)::float8              AS ip,
			       COALESCE(SUM(gs.h_allowed), 0)::int          AS h_allowed,
			       COALESCE(SUM(gs.r_p), 0)::int                AS r_allowed,
			       COALESCE(SUM(gs.er), 0)::int                 AS er,
			       COALESCE(SUM(gs.bb), 0)::int                 AS bb,
			       COALESCE(SUM(gs.hb), 0)::int                 AS hb,
			       COALESCE(SUM(gs.k), 0)::int                  AS k,
			       COALESCE(SUM(gs.gidp_p), 0)::int             AS gidp_p,
			       COALESCE(SUM(gs.nh), 0)::int                 AS nh,
			       COALESCE(SUM(gs.pg), 0)::int                 AS pg
			FROM game_stats gs
			JOIN players p ON gs.player_name = p.full_name
			WHERE p.player_id = $1
			GROUP BY gs.season
			ORDER BY gs.season`,

		// Head-to-head — raw game results grouped into directed matchup
		// rows. Zero-pairing rows are excluded here; the analytics core
		// treats one slipping through as a hard error.
		"matchups": `
			WITH game_results AS (
			    SELECT team_id, season, period, matchup, result
			    FROM game_stats
			    GROUP BY team_id, season, period, matchup, result
			),
			head_to_head AS (
			    SELECT t1.team_id AS team_id,
			           t2.team_id AS opponent_id,
			           SUM(CASE WHEN t1.result = 'W' THEN 1 ELSE 0 END) AS wins,
			           SUM(CASE WHEN t2.result = 'W' THEN 1 ELSE 0 END) AS losses
			    FROM game_results t1
			    JOIN game_results t2
			        ON t1.matchup = t2.matchup
			       AND t1.period = t2.period
			       AND t1.season = t2.season
			       AND t1.team_id != t2.team_id
			    GROUP BY t1.team_id, t2.team_id
			)
			SELECT h.team_id,
			       tm.location || ' ' || tm.team_name AS team_name,
			       h.opponent_id,
			       o.location || ' ' || o.team_name AS opponent_name,
			       h.wins::int,
			       h.losses::int,
			       (h.wins + h.losses)::int AS total_pairings,
			       (h.wins - h.losses)::int AS win_differential,
			       h.wins::float8 * 100.0 / (h.wins + h.losses) AS win_percentage
			FROM head_to_head h
			LEFT JOIN teams tm ON tm.team_id = h.team_id
			LEFT JOIN teams o ON o.team_id = h.opponent_id
			WHERE h.wins + h.losses > 0
			ORDER BY h.team_id, h.opponent_id`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
