package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/fantasysyndicate/league-data/internal/api/respond"
	"github.com/fantasysyndicate/league-data/internal/cache"
	"github.com/fantasysyndicate/league-data/internal/league"
)

// PlayerRef is a dropdown entry: rostered, non-prospect players.
type PlayerRef struct {
	PlayerID int    `json:"player_id"`
	FullName string `json:"full_name"`
}

// PlayerContract is one contract row on a profile.
type PlayerContract struct {
	Salary        float64 `json:"salary"`
	SalaryDisplay string  `json:"salary_display"`
	EndYear       int     `json:"end_year"`
}

// SeasonStats is one season of summed fantasy categories. Hitting and
// pitching columns ride together; the profile's column list says which set
// the dashboard should show.
type SeasonStats struct {
	Season int     `json:"season"`
	Points float64 `json:"points"`

	// Hitting
	Singles        int `json:"singles"`
	Doubles        int `json:"doubles"`
	Triples        int `json:"triples"`
	HomeRuns       int `json:"hr"`
	WalksHBP       int `json:"bb_hbp"`
	Strikeouts     int `json:"so"`
	StolenBases    int `json:"sb"`
	CaughtStealing int `json:"cs"`
	GIDPHitting    int `json:"gidp_h"`
	Cycles         int `json:"cyc"`
	MultiOnBase    int `json:"mobg"`
	Runs           int `json:"r"`
	RBI            int `json:"rbi"`

	// Pitching
	CompleteGames  int     `json:"cg"`
	Shutouts       int     `json:"sho"`
	Wins           int     `json:"w"`
	Losses         int     `json:"l"`
	Saves          int     `json:"sv"`
	Holds          int     `json:"hld"`
	InningsPitched float64 `json:"ip"`
	HitsAllowed    int     `json:"h_allowed"`
	RunsAllowed    int     `json:"r_allowed"`
	EarnedRuns     int     `json:"er"`
	Walks          int     `json:"bb"`
	HitBatters     int     `json:"hb"`
	PitchingKs     int     `json:"k"`
	GIDPPitching   int     `json:"gidp_p"`
	NoHitters      int     `json:"nh"`
	PerfectGames   int     `json:"pg"`
}

// hitterColumns and pitcherColumns are the display column sets, in the
// order the dashboard tables them.
var (
	hitterColumns = []string{
		"season", "points", "singles", "doubles", "triples", "hr", "bb_hbp",
		"so", "sb", "cs", "gidp_h", "cyc", "mobg", "r", "rbi",
	}
	pitcherColumns = []string{
		"season", "points", "cg", "sho", "w", "l", "sv", "hld", "ip", "k",
		"er", "bb", "hb", "h_allowed", "r_allowed", "gidp_p", "nh", "pg",
	}
)

// PlayerProfile is the full profile payload.
type PlayerProfile struct {
	PlayerID  int              `json:"player_id"`
	FullName  string           `json:"full_name"`
	IsPitcher bool             `json:"is_pitcher"`
	BrefID    *string          `json:"bref_id"`
	Contracts []PlayerContract `json:"contracts"`
	Seasons   []SeasonStats    `json:"seasons"`
	Columns   []string         `json:"columns"`
}

// ListTeamPlayers returns a team's profile-eligible players.
// @Summary List team players
// @Description Returns the team's rostered, non-prospect players for the profile dropdown.
// @Tags players
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {array} handler.PlayerRef
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams/{teamID}/players [get]
func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	h.serveCached(w, r, cache.Key("players", teamID), cache.TTLQuery, func() (interface{}, error) {
		rows, err := h.pool.Query(r.Context(), "players_by_team", teamID)
		if err != nil {
			return nil, fmt.Errorf("players for team %d: %w", teamID, err)
		}
		defer rows.Close()

		players := []PlayerRef{}
		for rows.Next() {
			var p PlayerRef
			if err := rows.Scan(&p.PlayerID, &p.FullName); err != nil {
				return nil, fmt.Errorf("scan player: %w", err)
			}
			players = append(players, p)
		}
		return players, rows.Err()
	})
}

// GetPlayerProfile returns a player's contracts and career stats.
// @Summary Get player profile
// @Description Returns contract rows and per-season career stat sums; the column list picks hitting or pitching categories from the player's role.
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} handler.PlayerProfile
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID}/profile [get]
func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(chi.URLParam(r, "playerID"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Player ID must be an integer")
		return
	}

	h.serveCached(w, r, cache.Key("profile", playerID), cache.TTLQuery, func() (interface{}, error) {
		profile := PlayerProfile{PlayerID: playerID}

		err := h.pool.QueryRow(r.Context(), "player_by_id", playerID).
			Scan(&profile.PlayerID, &profile.FullName, &profile.IsPitcher)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound(fmt.Sprintf("Player %d not found", playerID))
		}
		if err != nil {
			return nil, fmt.Errorf("get player %d: %w", playerID, err)
		}

		err = h.pool.QueryRow(r.Context(), "player_bref_id", playerID).Scan(&profile.BrefID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bref id for player %d: %w", playerID, err)
		}

		profile.Contracts, err = h.scanPlayerContracts(r, playerID)
		if err != nil {
			return nil, err
		}

		profile.Seasons, err = h.scanCareerStats(r, playerID)
		if err != nil {
			return nil, err
		}

		profile.Columns = hitterColumns
		if profile.IsPitcher {
			profile.Columns = pitcherColumns
		}
		return profile, nil
	})
}

func (h *Handler) scanPlayerContracts(r *http.Request, playerID int) ([]PlayerContract, error) {
	rows, err := h.pool.Query(r.Context(), "player_contracts", playerID)
	if err != nil {
		return nil, fmt.Errorf("contracts for player %d: %w", playerID, err)
	}
	defer rows.Close()

	contracts := []PlayerContract{}
	for rows.Next() {
		var c PlayerContract
		if err := rows.Scan(&c.Salary, &c.EndYear); err != nil {
			return nil, fmt.Errorf("scan player contract: %w", err)
		}
		c.SalaryDisplay = league.FormatMoney(c.Salary)
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func (h *Handler) scanCareerStats(r *http.Request, playerID int) ([]SeasonStats, error) {
	rows, err := h.pool.Query(r.Context(), "player_career_stats", playerID)
	if err != nil {
		return nil, fmt.Errorf("career stats for player %d: %w", playerID, err)
	}
	defer rows.Close()

	seasons := []SeasonStats{}
	for rows.Next() {
		var s SeasonStats
		if err := rows.Scan(
			&s.Season, &s.Points,
			&s.Singles, &s.Doubles, &s.Triples, &s.HomeRuns, &s.WalksHBP,
			&s.Strikeouts, &s.StolenBases, &s.CaughtStealing, &s.GIDPHitting,
			&s.Cycles, &s.MultiOnBase, &s.Runs, &s.RBI,
			&s.CompleteGames, &s.Shutouts, &s.Wins, &s.Losses, &s.Saves,
			&s.Holds, &s.InningsPitched, &s.HitsAllowed, &s.RunsAllowed,
			&s.EarnedRuns, &s.Walks, &s.HitBatters, &s.PitchingKs,
			&s.GIDPPitching, &s.NoHitters, &s.PerfectGames,
		); err != nil {
			return nil, fmt.Errorf("scan season stats: %w", err)
		}
		seasons = append(seasons, s)
	}
	return seasons, rows.Err()
}
