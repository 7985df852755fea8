package listener

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fantasysyndicate/league-data/internal/cache"
)

func seededCache(t *testing.T) *cache.Cache {
	t.Helper()
	c := cache.New(true)
	for _, key := range []string{
		"teams",
		cache.Key("team", 3),
		cache.Key("roster", 3),
		cache.Key("cap", 3, 2025),
		cache.Key("trades", 3),
		cache.Key("profile", 41),
		cache.Key("h2h_matrix"),
	} {
		c.Set(key, []byte(`{}`), time.Minute)
	}
	return c
}

func TestInvalidateRetention(t *testing.T) {
	c := seededCache(t)

	removed := Invalidate(c, ChangeEvent{Table: "retention", TeamID: 3})

	assert.Equal(t, 1, removed)
	_, _, ok := c.Get(cache.Key("cap", 3, 2025))
	assert.False(t, ok)
	_, _, ok = c.Get(cache.Key("roster", 3))
	assert.True(t, ok, "roster should survive a retention change")
}

func TestInvalidateGameStats(t *testing.T) {
	c := seededCache(t)

	removed := Invalidate(c, ChangeEvent{Table: "game_stats"})

	assert.Equal(t, 2, removed)
	_, _, ok := c.Get(cache.Key("profile", 41))
	assert.False(t, ok)
	_, _, ok = c.Get(cache.Key("h2h_matrix"))
	assert.False(t, ok)
	_, _, ok = c.Get("teams")
	assert.True(t, ok)
}

func TestInvalidateTeamPrefixCoversListAndDetail(t *testing.T) {
	c := seededCache(t)

	Invalidate(c, ChangeEvent{Table: "teams", TeamID: 3})

	_, _, ok := c.Get("teams")
	assert.False(t, ok)
	_, _, ok = c.Get(cache.Key("team", 3))
	assert.False(t, ok)
}

func TestInvalidateUnknownTableClearsEverything(t *testing.T) {
	c := seededCache(t)

	removed := Invalidate(c, ChangeEvent{Table: "mystery"})

	assert.Equal(t, 7, removed)
	_, _, ok := c.Get(cache.Key("trades", 3))
	assert.False(t, ok)
}

func TestInvalidateCredentialsTouchesNothing(t *testing.T) {
	c := seededCache(t)

	removed := Invalidate(c, ChangeEvent{Table: "credentials"})

	assert.Equal(t, 0, removed)
	_, _, ok := c.Get("teams")
	assert.True(t, ok)
}
