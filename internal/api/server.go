package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/fantasysyndicate/league-data/internal/api/handler"
	"github.com/fantasysyndicate/league-data/internal/auth"
	"github.com/fantasysyndicate/league-data/internal/cache"
	"github.com/fantasysyndicate/league-data/internal/config"
	"github.com/fantasysyndicate/league-data/internal/images"
)

// NewRouter creates and configures the Chi router with all middleware and
// routes. Data routes sit behind the session middleware; health, docs, and
// login stay public.
func NewRouter(pool *pgxpool.Pool, appCache *cache.Cache, cfg *config.Config, authSvc *auth.Service, imageSvc *images.Service) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS. Credentials must be allowed for the session cookie.
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "Link", "ETag"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(pool, appCache, cfg, authSvc, imageSvc)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Auth — login is the only public data endpoint
		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(authSvc.RequireSession)

			r.Get("/auth/me", h.Me)

			// Teams
			r.Get("/teams", h.ListTeams)
			r.Route("/teams/{teamID}", func(r chi.Router) {
				r.Get("/", h.GetTeam)
				r.Get("/roster", h.GetRoster)
				r.Get("/cap", h.GetCap)
				r.Get("/prospects", h.GetProspects)
				r.Get("/trades", h.GetTrades)
				r.Get("/awards", h.GetAwards)
				r.Get("/gc", h.GetGCBalance)
				r.Get("/players", h.ListTeamPlayers)
			})

			// Players
			r.Get("/players/{playerID}/profile", h.GetPlayerProfile)

			// Head-to-head
			r.Get("/h2h/breakdown/{teamID}", h.GetOpponentBreakdown)
			r.Get("/h2h/rivalries", h.GetRivalries)
			r.Get("/h2h/matrix", h.GetWinMatrix)

			// Images
			r.Get("/images/{name}", h.GetImage)
		})
	})

	return r
}
