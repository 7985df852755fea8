package auth

import (
	"context"
	"net/http"

	"github.com/fantasysyndicate/league-data/internal/api/respond"
)

type contextKey struct{}

// RequireSession rejects requests without a valid session cookie and stashes
// the session on the request context for handlers.
func (s *Service) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.cookieName)
		if err != nil {
			respond.WriteError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Login required")
			return
		}
		session, err := s.ParseToken(cookie.Value)
		if err != nil {
			respond.WriteError(w, http.StatusUnauthorized, "SESSION_EXPIRED", "Session is invalid or expired")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

// FromContext returns the session stored by RequireSession, or nil.
func FromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(contextKey{}).(*Session)
	return session
}
