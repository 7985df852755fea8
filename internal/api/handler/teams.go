package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/fantasysyndicate/league-data/internal/api/respond"
	"github.com/fantasysyndicate/league-data/internal/cache"
	"github.com/fantasysyndicate/league-data/internal/images"
	"github.com/fantasysyndicate/league-data/internal/league"
)

// Team is one franchise row with its branding fields.
type Team struct {
	TeamID          int     `json:"team_id"`
	Name            string  `json:"team_name"`
	Division        *string `json:"division"`
	LogoURL         *string `json:"logo_url"`
	BannerURL       *string `json:"banner_url"`
	PrimaryColor    *string `json:"primary_color"`
	SecondaryColor  *string `json:"secondary_color"`
	AccentColor     *string `json:"accent_color"`
	NeutralColor    *string `json:"neutral_color"`
	AdditionalColor *string `json:"additional_color"`
	FantraxURL      *string `json:"fantrax_url"`
}

// TeamDetail is the dashboard banner payload: the team plus counts.
type TeamDetail struct {
	Team
	Location      string `json:"location"`
	Nickname      string `json:"nickname"`
	RosterCount   int    `json:"roster_count"`
	ProspectCount int    `json:"prospect_count"`
}

// RosterPlayer is one active-roster row.
type RosterPlayer struct {
	PlayerID      int     `json:"player_id"`
	FullName      string  `json:"full_name"`
	Position      *string `json:"position"`
	MLBTeam       *string `json:"mlb_team"`
	Age           *int    `json:"age"`
	Salary        float64 `json:"salary"`
	SalaryDisplay string  `json:"salary_display"`
	ContractType  string  `json:"contract_type"`
	EndYear       int     `json:"end_year"`
	IsProspect    bool    `json:"is_prospect"`
}

// Prospect is one farm-system row.
type Prospect struct {
	PlayerID       int      `json:"player_id"`
	PlayerName     string   `json:"player_name"`
	MLBTeam        *string  `json:"mlb_team"`
	Position       *string  `json:"position"`
	Age            *int     `json:"age"`
	Options        *int     `json:"options"`
	Acquisition    *string  `json:"acquisition"`
	OverallPick    *int     `json:"overall_pick"`
	DraftYear      *int     `json:"draft_yr"`
	Bid            *float64 `json:"bid"`
	RookieEligible *bool    `json:"rookie_eligible"`
}

// Trade is one trade-history row. PlayerName doubles as the GC amount and
// Position as the GC year for coin trades, as the ledger stores them.
type Trade struct {
	PlayerName *string   `json:"player_name"`
	MLBTeam    *string   `json:"mlb_team"`
	Position   *string   `json:"position"`
	FromName   *string   `json:"from_name"`
	ToName     *string   `json:"to_name"`
	TradeType  *string   `json:"trade_type"`
	AssetType  *string   `json:"asset_type"`
	TradeDate  time.Time `json:"trade_date"`
}

// Award is one trophy-room row.
type Award struct {
	TeamID    int    `json:"team_id"`
	Season    int    `json:"season"`
	AwardID   int    `json:"award_id"`
	AwardText string `json:"award_text"`
	Image     string `json:"image,omitempty"`
}

// capPayload is the cap endpoint response: the computed summary plus the
// configured inputs and the dashboard display strings.
type capPayload struct {
	league.CapSummary
	CapLimit   float64    `json:"cap_limit"`
	CutoffYear int        `json:"cutoff_year"`
	Display    capDisplay `json:"display"`
}

type capDisplay struct {
	TotalSalary string `json:"total_salary"`
	DeadMoney   string `json:"dead_money"`
	CapSpace    string `json:"cap_space"`
}

// ListTeams returns all franchises.
// @Summary List teams
// @Description Returns every franchise with branding fields, ordered by display name.
// @Tags teams
// @Produce json
// @Success 200 {array} handler.Team
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "teams", cache.TTLTeams, func() (interface{}, error) {
		rows, err := h.pool.Query(r.Context(), "list_teams")
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}
		defer rows.Close()

		teams := []Team{}
		for rows.Next() {
			var t Team
			if err := rows.Scan(
				&t.TeamID, &t.Name, &t.Division, &t.LogoURL, &t.BannerURL,
				&t.PrimaryColor, &t.SecondaryColor, &t.AccentColor,
				&t.NeutralColor, &t.AdditionalColor, &t.FantraxURL,
			); err != nil {
				return nil, fmt.Errorf("scan team: %w", err)
			}
			teams = append(teams, t)
		}
		return teams, rows.Err()
	})
}

// GetTeam returns one franchise with roster and prospect counts.
// @Summary Get team
// @Description Returns one franchise with its branding fields and current roster/prospect counts.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} handler.TeamDetail
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	h.serveCached(w, r, cache.Key("team", teamID), cache.TTLQuery, func() (interface{}, error) {
		var d TeamDetail
		err := h.pool.QueryRow(r.Context(), "team_by_id", teamID).Scan(
			&d.TeamID, &d.Location, &d.Nickname, &d.Division,
			&d.LogoURL, &d.BannerURL, &d.PrimaryColor, &d.SecondaryColor,
			&d.AccentColor, &d.NeutralColor, &d.AdditionalColor, &d.FantraxURL,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound(fmt.Sprintf("Team %d not found", teamID))
		}
		if err != nil {
			return nil, fmt.Errorf("get team %d: %w", teamID, err)
		}
		d.Name = d.Location + " " + d.Nickname

		roster, err := h.scanRoster(r.Context(), teamID)
		if err != nil {
			return nil, err
		}
		prospects, err := h.scanProspects(r.Context(), teamID)
		if err != nil {
			return nil, err
		}
		d.RosterCount = len(roster)
		d.ProspectCount = len(prospects)
		return d, nil
	})
}

// GetRoster returns a team's active roster.
// @Summary Get roster
// @Description Returns the team's active roster: non-pending-release contracts ending after the season cutoff.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {array} handler.RosterPlayer
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams/{teamID}/roster [get]
func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	h.serveCached(w, r, cache.Key("roster", teamID), cache.TTLQuery, func() (interface{}, error) {
		return h.scanRoster(r.Context(), teamID)
	})
}

// GetCap returns a team's cap position.
// @Summary Get cap summary
// @Description Computes total salary, dead money, and cap space for a team from its contract and retention rows.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} handler.capPayload
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams/{teamID}/cap [get]
func (h *Handler) GetCap(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	h.serveCached(w, r, cache.Key("cap", teamID, h.cfg.SeasonCutoff), cache.TTLQuery, func() (interface{}, error) {
		contracts, err := h.scanContracts(r.Context(), teamID)
		if err != nil {
			return nil, err
		}
		retentions, err := h.scanRetention(r.Context(), teamID)
		if err != nil {
			return nil, err
		}

		summary := h.ledger.ComputeCapSummary(teamID, h.cfg.SeasonCutoff, contracts, retentions)
		return capPayload{
			CapSummary: summary,
			CapLimit:   h.ledger.CapLimit,
			CutoffYear: h.cfg.SeasonCutoff,
			Display: capDisplay{
				TotalSalary: league.FormatMoney(summary.TotalSalary),
				DeadMoney:   league.FormatMoney(summary.DeadMoney),
				CapSpace:    league.FormatMoney(summary.CapSpace),
			},
		}, nil
	})
}

// GetProspects returns a team's farm system.
// @Summary Get prospects
// @Description Returns the team's prospects with draft and acquisition details.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {array} handler.Prospect
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams/{teamID}/prospects [get]
func (h *Handler) GetProspects(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	h.serveCached(w, r, cache.Key("prospects", teamID), cache.TTLQuery, func() (interface{}, error) {
		return h.scanProspects(r.Context(), teamID)
	})
}

// GetTrades returns a team's trade history, newest first.
// @Summary Get trade history
// @Description Returns every trade the team was on either side of, newest first.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {array} handler.Trade
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams/{teamID}/trades [get]
func (h *Handler) GetTrades(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	h.serveCached(w, r, cache.Key("trades", teamID), cache.TTLQuery, func() (interface{}, error) {
		rows, err := h.pool.Query(r.Context(), "trades_by_team", teamID)
		if err != nil {
			return nil, fmt.Errorf("trades for team %d: %w", teamID, err)
		}
		defer rows.Close()

		trades := []Trade{}
		for rows.Next() {
			var t Trade
			if err := rows.Scan(
				&t.PlayerName, &t.MLBTeam, &t.Position, &t.FromName,
				&t.ToName, &t.TradeType, &t.AssetType, &t.TradeDate,
			); err != nil {
				return nil, fmt.Errorf("scan trade: %w", err)
			}
			trades = append(trades, t)
		}
		return trades, rows.Err()
	})
}

// GetAwards returns a team's trophy room.
// @Summary Get awards
// @Description Returns the team's awards newest season first, each with its artwork filename.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {array} handler.Award
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams/{teamID}/awards [get]
func (h *Handler) GetAwards(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	h.serveCached(w, r, cache.Key("awards", teamID), cache.TTLQuery, func() (interface{}, error) {
		rows, err := h.pool.Query(r.Context(), "awards_by_team", teamID)
		if err != nil {
			return nil, fmt.Errorf("awards for team %d: %w", teamID, err)
		}
		defer rows.Close()

		awards := []Award{}
		for rows.Next() {
			var a Award
			if err := rows.Scan(&a.TeamID, &a.Season, &a.AwardID, &a.AwardText); err != nil {
				return nil, fmt.Errorf("scan award: %w", err)
			}
			if name, ok := images.AwardImage(a.AwardID); ok {
				a.Image = name
			}
			awards = append(awards, a)
		}
		return awards, rows.Err()
	})
}

// GetGCBalance returns a team's Griffey Coin balance.
// @Summary Get Griffey Coin balance
// @Description Returns the team's coin balance; teams with no ledger row read as zero.
// @Tags teams
// @Produce json
// @Param teamID path int true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams/{teamID}/gc [get]
func (h *Handler) GetGCBalance(w http.ResponseWriter, r *http.Request) {
	teamID, ok := teamIDParam(w, r)
	if !ok {
		return
	}

	h.serveCached(w, r, cache.Key("gc", teamID), cache.TTLQuery, func() (interface{}, error) {
		var balance *float64
		err := h.pool.QueryRow(r.Context(), "gc_balance", teamID).Scan(&balance)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("gc balance for team %d: %w", teamID, err)
		}
		value := league.CoalesceZero(balance)
		return map[string]interface{}{
			"team_id":    teamID,
			"gc_balance": value,
			"display":    fmt.Sprintf("%.2f", value),
		}, nil
	})
}

// --------------------------------------------------------------------------
// Row scanners shared across endpoints
// --------------------------------------------------------------------------

func (h *Handler) scanRoster(ctx context.Context, teamID int) ([]RosterPlayer, error) {
	rows, err := h.pool.Query(ctx, "roster_by_team", teamID, h.cfg.SeasonCutoff)
	if err != nil {
		return nil, fmt.Errorf("roster for team %d: %w", teamID, err)
	}
	defer rows.Close()

	roster := []RosterPlayer{}
	for rows.Next() {
		var p RosterPlayer
		if err := rows.Scan(
			&p.PlayerID, &p.FullName, &p.Position, &p.MLBTeam, &p.Age,
			&p.Salary, &p.EndYear, &p.IsProspect, &p.ContractType,
		); err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		p.SalaryDisplay = league.FormatMoney(p.Salary)
		roster = append(roster, p)
	}
	return roster, rows.Err()
}

func (h *Handler) scanProspects(ctx context.Context, teamID int) ([]Prospect, error) {
	rows, err := h.pool.Query(ctx, "prospects_by_team", teamID)
	if err != nil {
		return nil, fmt.Errorf("prospects for team %d: %w", teamID, err)
	}
	defer rows.Close()

	prospects := []Prospect{}
	for rows.Next() {
		var p Prospect
		if err := rows.Scan(
			&p.PlayerID, &p.PlayerName, &p.MLBTeam, &p.Position, &p.Age,
			&p.Options, &p.Acquisition, &p.OverallPick, &p.DraftYear,
			&p.Bid, &p.RookieEligible,
		); err != nil {
			return nil, fmt.Errorf("scan prospect: %w", err)
		}
		prospects = append(prospects, p)
	}
	return prospects, rows.Err()
}

func (h *Handler) scanContracts(ctx context.Context, teamID int) ([]league.ContractRecord, error) {
	rows, err := h.pool.Query(ctx, "contracts_by_team", teamID)
	if err != nil {
		return nil, fmt.Errorf("contracts for team %d: %w", teamID, err)
	}
	defer rows.Close()

	contracts := []league.ContractRecord{}
	for rows.Next() {
		var c league.ContractRecord
		if err := rows.Scan(&c.PlayerID, &c.TeamID, &c.Salary, &c.EndYear, &c.Status); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func (h *Handler) scanRetention(ctx context.Context, teamID int) ([]league.RetentionRecord, error) {
	rows, err := h.pool.Query(ctx, "retention_by_team", teamID)
	if err != nil {
		return nil, fmt.Errorf("retention for team %d: %w", teamID, err)
	}
	defer rows.Close()

	retentions := []league.RetentionRecord{}
	for rows.Next() {
		var rec league.RetentionRecord
		if err := rows.Scan(&rec.TeamID, &rec.PlayerID, &rec.RetainedSalary); err != nil {
			return nil, fmt.Errorf("scan retention: %w", err)
		}
		retentions = append(retentions, rec)
	}
	return retentions, rows.Err()
}

// teamIDParam parses the {teamID} path parameter, writing a 400 on failure.
func teamIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team ID must be an integer")
		return 0, false
	}
	return id, true
}
