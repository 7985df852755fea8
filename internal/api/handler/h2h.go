package handler

import (
	"fmt"
	"net/http"

	"github.com/fantasysyndicate/league-data/internal/cache"
	"github.com/fantasysyndicate/league-data/internal/league"
)

// scanMatchups runs the head-to-head aggregate and scans every directed
// team/opponent row.
func (h *Handler) scanMatchups(r *http.Request) ([]league.MatchupRecord, error) {
	rows, err := h.pool.Query(r.Context(), "matchups")
	if err != nil {
		return nil, fmt.Errorf("query matchups: %w", err)
	}
	defer rows.Close()

	matchups := []league.MatchupRecord{}
	for rows.Next() {
		var m league.MatchupRecord
		if err := rows.Scan(
			&m.TeamID, &m.TeamName, &m.OpponentID, &m.OpponentName,
			&m.Wins, &m.Losses, &m.TotalPairings, &m.WinDifferential,
			&m.WinPercentage,
		); err != nil {
			return nil, fmt.Errorf("scan matchup: %w", err)
		}
		matchups = append(matchups, m)
	}
	return matchups, rows.Err()
}

// GetOpponentBreakdown returns one team's record against every opponent.
// @Summary Head-to-head breakdown
// @Description Returns the team's all-time record against each opponent, best win percentage first.
// @Tags h2h
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {array} league.MatchupRecord
// @Failure 400 {object} respond.ErrorResponse
// @Failure 422 {object} respond.ErrorResponse
// @Router /h2h/breakdown/{teamID} [get]
func (h *Handler) GetOpponentBreakdown(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	h.serveCached(w, r, cache.Key("h2h_breakdown", teamID), cache.TTLQuery, func() (interface{}, error) {
		matchups, err := h.scanMatchups(r)
		if err != nil {
			return nil, err
		}
		breakdown, err := league.OpponentBreakdown(teamID, matchups)
		if err != nil {
			return nil, errBadData(err.Error())
		}
		return breakdown, nil
	})
}

// GetRivalries returns the league's top rivalries.
// @Summary Top rivalries
// @Description Pairs every team with its most-played available opponent, most games first.
// @Tags h2h
// @Produce json
// @Success 200 {array} league.RivalryPairing
// @Failure 422 {object} respond.ErrorResponse
// @Router /h2h/rivalries [get]
func (h *Handler) GetRivalries(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.Key("h2h_rivalries"), cache.TTLQuery, func() (interface{}, error) {
		matchups, err := h.scanMatchups(r)
		if err != nil {
			return nil, err
		}
		rivalries, err := league.TopRivalries(matchups)
		if err != nil {
			return nil, errBadData(err.Error())
		}
		return rivalries, nil
	})
}

// GetWinMatrix returns the league-wide win percentage grid.
// @Summary Win percentage matrix
// @Description Returns a team-by-opponent win percentage grid; null cells mean the pair never met.
// @Tags h2h
// @Produce json
// @Success 200 {object} league.Matrix
// @Router /h2h/matrix [get]
func (h *Handler) GetWinMatrix(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, cache.Key("h2h_matrix"), cache.TTLQuery, func() (interface{}, error) {
		matchups, err := h.scanMatchups(r)
		if err != nil {
			return nil, err
		}
		return league.WinMatrix(matchups), nil
	})
}
