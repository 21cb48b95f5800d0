package handler

import (
	"net/http"
	"path/filepath"

	"github.com/floopybird/backend/internal/api/middleware"
	"github.com/floopybird/backend/internal/services/auth"
)

// HomeHandler serves the game page to authenticated users
type HomeHandler struct {
	authService *auth.Service
	staticDir   string
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(authService *auth.Service, staticDir string) *HomeHandler {
	return &HomeHandler{
		authService: authService,
		staticDir:   staticDir,
	}
}

// Home handles GET /. Without a valid session the browser is sent to
// the login view instead of receiving a 401.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractToken(r)
	if token == "" {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if _, err := h.authService.ValidateSession(r.Context(), token); err != nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
