package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("NEON_DATABASE_URL", "")
	t.Setenv("COOKIE_KEY", "k")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresCookieKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/league")
	t.Setenv("COOKIE_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/league")
	t.Setenv("COOKIE_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, float64(DefaultCapLimit), cfg.CapLimit)
	assert.Equal(t, DefaultSeasonCutoff, cfg.SeasonCutoff)
	assert.Equal(t, "fantasy_syndicate_cookie", cfg.CookieName)
	assert.Equal(t, 30, cfg.CookieExpiryDays)
	assert.Equal(t, 8000, cfg.APIPort)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow)
	assert.True(t, cfg.CacheEnabled)
	assert.False(t, cfg.R2Configured())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/league")
	t.Setenv("COOKIE_KEY", "secret")
	t.Setenv("CAP_LIMIT", "120.5")
	t.Setenv("SEASON_CUTOFF", "2026")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://league.example.com, https://www.example.com")
	t.Setenv("R2_ENDPOINT", "https://acct.r2.cloudflarestorage.com")
	t.Setenv("R2_ACCESS_KEY_ID", "id")
	t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
	t.Setenv("R2_BUCKET", "syndicate")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 120.5, cfg.CapLimit)
	assert.Equal(t, 2026, cfg.SeasonCutoff)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://league.example.com", "https://www.example.com"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.R2Configured())
}
