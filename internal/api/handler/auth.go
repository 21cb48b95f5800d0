package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	"github.com/floopybird/backend/internal/api/apierr"
	"github.com/floopybird/backend/internal/api/middleware"
	"github.com/floopybird/backend/internal/api/request"
	"github.com/floopybird/backend/internal/api/response"
	"github.com/floopybird/backend/internal/services/auth"
)

// loginAsset is the static page served for GET /login, GET /register
// and after logout
const loginAsset = "login.html"

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	authService *auth.Service
	staticDir   string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, staticDir string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		staticDir:   staticDir,
	}
}

// LoginPage serves the login asset for GET /login and GET /register
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, loginAsset))
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	session, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session.Token)
	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Registration successful!"})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("invalid request body"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.setSessionCookie(w, session.Token)
	response.JSON(w, http.StatusOK, response.LoginResponse{
		Message:     "Login successful!",
		RedirectURL: "/",
	})
}

// Logout handles POST /logout. The session is destroyed whether or not
// one exists, the cookie is cleared and the login asset is served.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractToken(r)
	if err := h.authService.Logout(r.Context(), token); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.clearSessionCookie(w)
	http.ServeFile(w, r, filepath.Join(h.staticDir, loginAsset))
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
