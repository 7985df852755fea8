// Package league contains the pure league computations: salary-cap
// aggregation and head-to-head rivalry analytics. Everything here operates
// on already-materialized rows — handlers scan SQL results into these
// records and call in; no I/O or framework types cross this boundary.
package league

import "strings"

// Contract status tags as stored in the contracts ledger. Status is a raw
// tag string; tags are matched by substring, same as the LIKE filters the
// SQL layer applies.
const (
	StatusPendingRelease = "PR"
	StatusUnrestricted   = "UFA"
	StatusRookie         = "RO"
)

// ContractRecord is one row of the contract ledger. Rows are immutable once
// a season closes; re-signings supersede with new rows.
type ContractRecord struct {
	PlayerID int     `json:"player_id"`
	TeamID   int     `json:"team_id"`
	Salary   float64 `json:"salary"`
	EndYear  int     `json:"end_year"`
	Status   string  `json:"status"`
}

// HasTag reports whether the contract status carries the given tag.
func (c ContractRecord) HasTag(tag string) bool {
	return strings.Contains(c.Status, tag)
}

// RetentionRecord is salary a team still owes on a player it traded away.
// TeamID is the team paying, not the team rostering the player.
type RetentionRecord struct {
	TeamID         int     `json:"team_id"`
	PlayerID       int     `json:"player_id"`
	RetainedSalary float64 `json:"retained_salary"`
}

// CapSummary is a team's derived cap position. Zeroes are real zeroes;
// rendering them as a placeholder is the display layer's business.
type CapSummary struct {
	TeamID      int     `json:"team_id"`
	TotalSalary float64 `json:"total_salary"`
	DeadMoney   float64 `json:"dead_money"`
	CapSpace    float64 `json:"cap_space"`
}

// MatchupRecord is one directed head-to-head row, already aggregated by the
// database from raw game results. Symmetric by construction: every (A,B)
// row has a (B,A) twin with wins and losses swapped.
type MatchupRecord struct {
	TeamID          int     `json:"team_id"`
	TeamName        string  `json:"team_name"`
	OpponentID      int     `json:"opponent_id"`
	OpponentName    string  `json:"opponent_name"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	TotalPairings   int     `json:"total_pairings"`
	WinDifferential int     `json:"win_differential"`
	WinPercentage   float64 `json:"win_percentage"`
}

// RivalryPairing is one selected headline rivalry. TeamA and TeamB are
// canonically ordered (lexicographic) so the pairing identity is the same
// regardless of which side was "team" in the source row; WinsA and LossesA
// are from TeamA's perspective.
type RivalryPairing struct {
	Key        string  `json:"key"`
	TeamA      string  `json:"team_a"`
	TeamB      string  `json:"team_b"`
	WinsA      int     `json:"wins_a"`
	LossesA    int     `json:"losses_a"`
	TotalGames int     `json:"total_games"`
	WinPctA    float64 `json:"win_pct_a"`
}
