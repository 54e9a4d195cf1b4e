package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"time"
	"workshop-site/internal/auth"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/middleware"
	"workshop-site/internal/service"
	"workshop-site/internal/session"
	"workshop-site/internal/view"

	"golang.org/x/oauth2"
)

// Identifier verifies a single sign-on authorization code.
type Identifier interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Identify(ctx context.Context, code string) (*auth.Claims, error)
}

// Authenticator checks operator credentials.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*data.Operator, error)
	Lookup(ctx context.Context, email string) (*data.Operator, error)
}

// AuthHandler holds the dependencies for the authentication handlers.
type AuthHandler struct {
	operators Authenticator
	sso       Identifier
	sessions  session.Manager
	view      *view.View
	log       logger.Logger
}

// NewAuthHandler creates a new AuthHandler. sso may be nil when single sign-on is off.
func NewAuthHandler(operators Authenticator, sso Identifier, sm session.Manager, v *view.View, log logger.Logger) *AuthHandler {
	return &AuthHandler{operators: operators, sso: sso, sessions: sm, view: v, log: log}
}

// loginFormHandler shows the operator login form.
func (h *AuthHandler) loginFormHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if middleware.GetUserInfo(r.Context()).IsOperator() {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return nil
	}
	data := map[string]interface{}{
		"Flash":      session.PopFlash(r.Context(), h.sessions),
		"SSOEnabled": h.sso != nil,
	}
	if err := h.view.Render(w, r, "login.html", data); err != nil {
		return renderFailed(err, "login page")
	}
	return nil
}

// handleLogin checks the submitted credentials and starts an operator session.
func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	op, err := h.operators.Login(ctx, r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			session.SetFlash(ctx, h.sessions, session.FlashError, "Invalid email or password.")
		} else {
			h.log.Error(err, "Login failed")
			session.SetFlash(ctx, h.sessions, session.FlashError, "Login is unavailable. Please try again later.")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	h.startSession(w, r, op)
}

// handleLogout ends the operator session.
func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := session.LogOut(r.Context(), h.sessions); err != nil {
		h.log.Error(err, "Failed to destroy session")
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// handleSSOLogin redirects the operator to the OIDC provider to log in.
// It uses a random 'state' string for CSRF protection.
func (h *AuthHandler) handleSSOLogin(w http.ResponseWriter, r *http.Request) {
	if h.sso == nil {
		http.NotFound(w, r)
		return
	}
	state, err := randString(16)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	// Store the state in a short-lived cookie to verify on callback.
	http.SetCookie(w, &http.Cookie{
		Name:     "state",
		Value:    state,
		Path:     "/",
		MaxAge:   int(10 * time.Minute / time.Second),
		HttpOnly: true,
		Secure:   r.TLS != nil,
	})
	http.Redirect(w, r, h.sso.AuthCodeURL(state), http.StatusFound)
}

// handleCallback is the redirect URL for the OIDC provider. The verified email
// must belong to a registered operator.
func (h *AuthHandler) handleCallback(w http.ResponseWriter, r *http.Request) {
	if h.sso == nil {
		http.NotFound(w, r)
		return
	}
	stateCookie, err := r.Cookie("state")
	if err != nil {
		http.Error(w, "state cookie not found", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != stateCookie.Value {
		http.Error(w, "state did not match", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "state", Path: "/", MaxAge: -1})

	ctx := r.Context()
	claims, err := h.sso.Identify(ctx, r.URL.Query().Get("code"))
	if err != nil {
		h.log.Error(err, "Single sign-on failed")
		session.SetFlash(ctx, h.sessions, session.FlashError, "Single sign-on failed. Please try again.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	op, err := h.operators.Lookup(ctx, claims.Email)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Error(err, "Operator lookup failed")
		}
		session.SetFlash(ctx, h.sessions, session.FlashError, claims.Email+" is not an operator of this site.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	h.startSession(w, r, op)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, op *data.Operator) {
	if err := session.LogIn(r.Context(), h.sessions, op); err != nil {
		h.log.Error(err, "Failed to start operator session")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	h.log.With(map[string]interface{}{"operator": op.Email}).Info("Operator logged in")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// randString is a helper function to generate a random string for the 'state' parameter.
func randString(nByte int) (string, error) {
	b := make([]byte, nByte)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
