package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasysyndicate/league-data/internal/config"
)

func testService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{
		CookieKey:        "test-cookie-key",
		CookieName:       "fantasy_syndicate_cookie",
		CookieExpiryDays: 30,
	}
	return NewService(nil, cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	s := testService(t)
	session := &Session{Username: "commish", Name: "The Commissioner", Email: "commish@example.com"}

	token, err := s.IssueToken(session)
	require.NoError(t, err)

	got, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestParseRejectsWrongKey(t *testing.T) {
	s := testService(t)
	token, err := s.IssueToken(&Session{Username: "commish"})
	require.NoError(t, err)

	other := NewService(nil, &config.Config{
		CookieKey:        "a-different-key",
		CookieName:       "fantasy_syndicate_cookie",
		CookieExpiryDays: 30,
	})
	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	s := testService(t)
	s.expiry = -time.Hour

	token, err := s.IssueToken(&Session{Username: "commish"})
	require.NoError(t, err)

	_, err = s.ParseToken(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	s := testService(t)
	_, err := s.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestCookieAttributes(t *testing.T) {
	s := testService(t)
	c := s.Cookie("tok")
	assert.Equal(t, "fantasy_syndicate_cookie", c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, int((30 * 24 * time.Hour).Seconds()), c.MaxAge)

	cleared := s.ClearCookie()
	assert.Equal(t, -1, cleared.MaxAge)
	assert.Empty(t, cleared.Value)
}

func TestRequireSession(t *testing.T) {
	s := testService(t)
	token, err := s.IssueToken(&Session{Username: "commish", Name: "The Commissioner"})
	require.NoError(t, err)

	var seen *Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	guarded := s.RequireSession(next)

	// No cookie
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Bad token
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.AddCookie(&http.Cookie{Name: s.CookieName(), Value: "junk"})
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid session
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.AddCookie(s.Cookie(token))
	guarded.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "commish", seen.Username)
}
