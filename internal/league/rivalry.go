package league

import (
	"fmt"
	"sort"
)

// validateMatchups rejects rows that would make win percentage undefined.
// The SQL aggregation never emits zero-pairing rows, so one reaching here
// means the producer is broken — fail fast rather than divide by zero.
func validateMatchups(matchups []MatchupRecord) error {
	for _, m := range matchups {
		if m.Wins+m.Losses == 0 {
			return fmt.Errorf("matchup %s vs %s has zero pairings", m.TeamName, m.OpponentName)
		}
	}
	return nil
}

// OpponentBreakdown returns the queried team's head-to-head rows sorted
// descending by win percentage. The sort is stable: rows with equal
// percentages keep their original relative order, which is the only
// tie-break the league has ever used.
func OpponentBreakdown(teamID int, matchups []MatchupRecord) ([]MatchupRecord, error) {
	if err := validateMatchups(matchups); err != nil {
		return nil, err
	}

	rows := []MatchupRecord{}
	for _, m := range matchups {
		if m.TeamID == teamID {
			rows = append(rows, m)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].WinPercentage > rows[j].WinPercentage
	})
	return rows, nil
}

// PairingKey returns the canonical identity for a team pair: both orderings
// of the same two teams collide to the same key.
func PairingKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + " vs " + b
}

// TopRivalries selects one headline rivalry per team: directed rows are
// sorted descending by total games played, then scanned greedily — a row is
// accepted only if neither endpoint team has been claimed by an earlier
// pick. Each pairing's symmetric twin carries the same game count and sorts
// adjacent; the claim check drops it, so the duplication is expected input.
// At most floor(N/2) pairings come back for N teams, sorted ascending by
// the primary team's name.
//
// Greedy by intent: the league's published rivalry list has always been the
// output of this exact scan, so a maximum-weight matching would change
// standings people already argue about.
func TopRivalries(matchups []MatchupRecord) ([]RivalryPairing, error) {
	if err := validateMatchups(matchups); err != nil {
		return nil, err
	}

	rows := make([]MatchupRecord, len(matchups))
	copy(rows, matchups)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPairings > rows[j].TotalPairings
	})

	claimed := make(map[string]struct{}, len(rows))
	selected := []RivalryPairing{}
	for _, row := range rows {
		if _, ok := claimed[row.TeamName]; ok {
			continue
		}
		if _, ok := claimed[row.OpponentName]; ok {
			continue
		}
		claimed[row.TeamName] = struct{}{}
		claimed[row.OpponentName] = struct{}{}
		selected = append(selected, pairingFromRow(row))
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].TeamA < selected[j].TeamA
	})
	return selected, nil
}

// pairingFromRow canonicalizes a directed row into a RivalryPairing,
// flipping the record when the row's opponent sorts first.
func pairingFromRow(row MatchupRecord) RivalryPairing {
	p := RivalryPairing{
		Key:        PairingKey(row.TeamName, row.OpponentName),
		TeamA:      row.TeamName,
		TeamB:      row.OpponentName,
		WinsA:      row.Wins,
		LossesA:    row.Losses,
		TotalGames: row.TotalPairings,
	}
	if row.OpponentName < row.TeamName {
		p.TeamA, p.TeamB = row.OpponentName, row.TeamName
		p.WinsA, p.LossesA = row.Losses, row.Wins
	}
	p.WinPctA = Round2(100 * float64(p.WinsA) / float64(p.WinsA+p.LossesA))
	return p
}

// Matrix is the team×team win-percentage pivot behind the heatmap.
// Rows[i][j] is team Teams[i]'s win percentage against Teams[j], nil where
// the two never met (including the diagonal).
type Matrix struct {
	Teams []string     `json:"teams"`
	Rows  [][]*float64 `json:"rows"`
}

// WinMatrix pivots directed matchup rows into a Matrix. Teams are ordered
// lexicographically on both axes.
func WinMatrix(matchups []MatchupRecord) Matrix {
	seen := make(map[string]struct{})
	for _, m := range matchups {
		seen[m.TeamName] = struct{}{}
		seen[m.OpponentName] = struct{}{}
	}
	teams := make([]string, 0, len(seen))
	for name := range seen {
		teams = append(teams, name)
	}
	sort.Strings(teams)

	index := make(map[string]int, len(teams))
	for i, name := range teams {
		index[name] = i
	}

	rows := make([][]*float64, len(teams))
	for i := range rows {
		rows[i] = make([]*float64, len(teams))
	}
	for _, m := range matchups {
		pct := m.WinPercentage
		rows[index[m.TeamName]][index[m.OpponentName]] = &pct
	}

	return Matrix{Teams: teams, Rows: rows}
}
