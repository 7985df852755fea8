// Package listener provides a Postgres LISTEN/NOTIFY consumer that drops
// stale cache entries when league data changes. It holds a dedicated pgx
// connection (not from the pool) listening on the `league_data_changed`
// channel.
//
// Table triggers fire pg_notify after ingest writes (trades entered, rosters
// edited, stats migrated), so dashboards see changes without waiting out the
// cache TTL.
package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fantasysyndicate/league-data/internal/cache"
)

const (
	channel          = "league_data_changed"
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// ChangeEvent is the JSON payload from pg_notify('league_data_changed', ...).
// TeamID is zero for league-wide changes.
type ChangeEvent struct {
	Table  string `json:"table"`
	TeamID int    `json:"team_id"`
}

// tablePrefixes maps a changed table to the cache key prefixes it
// invalidates. game_stats feeds both player profiles and every head-to-head
// view, so it clears the widest set.
var tablePrefixes = map[string][]string{
	"teams":       {"teams", "team"},
	"roster":      {"roster", "players", "team"},
	"contracts":   {"roster", "cap", "profile", "players"},
	"retention":   {"cap"},
	"prospects":   {"prospects", "roster", "team"},
	"trades":      {"trades"},
	"awards":      {"awards"},
	"gc":          {"gc"},
	"game_stats":  {"profile", "h2h_breakdown", "h2h_rivalries", "h2h_matrix"},
	"players":     {"players", "profile", "roster"},
	"player_ids":  {"profile"},
	"credentials": {},
}

// Start opens a dedicated connection and listens on the league_data_changed
// channel. It reconnects automatically on connection loss. Blocks until ctx
// is cancelled. Intended to be called with `go`.
func Start(ctx context.Context, dbURL string, appCache *cache.Cache, logger *slog.Logger) {
	backoff := reconnectBackoff

	for {
		err := listenLoop(ctx, dbURL, appCache, logger)
		if ctx.Err() != nil {
			logger.Info("Change listener stopped (context cancelled)")
			return
		}

		logger.Error("Change listener disconnected, reconnecting...",
			"error", err, "backoff", backoff)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

// listenLoop runs a single listen session. Returns when the connection drops
// or the context is cancelled.
func listenLoop(ctx context.Context, dbURL string, appCache *cache.Cache, logger *slog.Logger) error {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	_, err = conn.Exec(ctx, "LISTEN "+channel)
	if err != nil {
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}
	logger.Info("Change listener connected", "channel", channel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}

		var event ChangeEvent
		if err := json.Unmarshal([]byte(notification.Payload), &event); err != nil {
			logger.Warn("Failed to parse change event",
				"payload", notification.Payload, "error", err)
			continue
		}

		removed := Invalidate(appCache, event)
		logger.Info("Change event processed",
			"table", event.Table,
			"team_id", event.TeamID,
			"entries_dropped", removed)
	}
}

// Invalidate drops the cache entries a change event makes stale. An unknown
// table clears the whole cache; guessing wrong the other way would serve
// stale data.
func Invalidate(appCache *cache.Cache, event ChangeEvent) int {
	prefixes, known := tablePrefixes[event.Table]
	if !known {
		return appCache.Clear()
	}

	removed := 0
	for _, prefix := range prefixes {
		removed += appCache.InvalidatePrefix(prefix)
	}
	return removed
}
