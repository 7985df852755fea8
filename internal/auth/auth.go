// Package auth verifies league credentials and manages session cookies.
//
// Credentials live in the credentials table (bcrypt password hashes, as the
// league's onboarding script writes them). Sessions are HS256 JWTs carried
// in an HTTP-only cookie.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/fantasysyndicate/league-data/internal/config"
)

// ErrInvalidCredentials is returned for unknown users and wrong passwords
// alike, so a login probe can't distinguish the two.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// Session identifies an authenticated league member.
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service verifies credentials against the database and signs session tokens.
type Service struct {
	pool       *pgxpool.Pool
	cookieName string
	key        []byte
	expiry     time.Duration
	secure     bool
}

// NewService creates an auth service from application config.
func NewService(pool *pgxpool.Pool, cfg *config.Config) *Service {
	return &Service{
		pool:       pool,
		cookieName: cfg.CookieName,
		key:        []byte(cfg.CookieKey),
		expiry:     time.Duration(cfg.CookieExpiryDays) * 24 * time.Hour,
		secure:     cfg.IsProduction(),
	}
}

// Login verifies a username/password pair and returns the session plus a
// signed token for the cookie.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, string, error) {
	var (
		storedUser string
		email      string
		name       string
		hash       string
	)
	err := s.pool.QueryRow(ctx, "credentials_by_username", username).
		Scan(&storedUser, &email, &name, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("load credentials: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	session := &Session{Username: storedUser, Name: name, Email: email}
	token, err := s.IssueToken(session)
	if err != nil {
		return nil, "", err
	}
	return session, token, nil
}

// IssueToken signs a session token with the configured cookie key.
func (s *Service) IssueToken(session *Session) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Name:  session.Name,
		Email: session.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a signed token and returns its session.
func (s *Service) ParseToken(tokenStr string) (*Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return &Session{Username: claims.Subject, Name: claims.Name, Email: claims.Email}, nil
}

// Cookie wraps a signed token in the session cookie.
func (s *Service) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.expiry.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie expires the session cookie immediately.
func (s *Service) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CookieName returns the configured session cookie name.
func (s *Service) CookieName() string { return s.cookieName }
