package api

import (
	"log/slog"
	"net/http"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/floopybird/backend/internal/api/handler"
	apimiddleware "github.com/floopybird/backend/internal/api/middleware"
	"github.com/floopybird/backend/internal/middleware"
	"github.com/floopybird/backend/internal/services/auth"
	"github.com/floopybird/backend/internal/services/leaderboard"
	"github.com/floopybird/backend/internal/storage"
)

// RouterConfig holds configuration for the HTTP gateway
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	LeaderboardService *leaderboard.Service
	Storage            storage.Storage
	StaticDir          string
	AllowedOrigins     []string
}

// NewRouter creates the HTTP gateway with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.StaticDir)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)
	healthHandler := handler.NewHealthHandler(cfg.Storage)
	homeHandler := handler.NewHomeHandler(cfg.AuthService, cfg.StaticDir)

	// Root page: session-gated, redirects to the login view
	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	// Auth routes (no session required). GET serves the login asset,
	// mirroring the browser flow.
	r.HandleFunc("/register", authHandler.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	// Logout destroys whatever session is presented; it has no gate so
	// it stays idempotent for clients that already lost their session.
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Public leaderboard and health routes
	r.HandleFunc("/leaderboard", leaderboardHandler.Top).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Session-gated API routes
	protected := r.NewRoute().Subrouter()
	protected.Use(apimiddleware.Auth(cfg.AuthService))
	protected.HandleFunc("/submit-score", leaderboardHandler.Submit).Methods(http.MethodPost)

	// Static client assets
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return gorilla.CORS(
		gorilla.AllowedOrigins(origins),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		gorilla.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)
}
