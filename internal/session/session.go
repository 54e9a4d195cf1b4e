// Package session keeps per-visitor state in server-side scs sessions.
package session

import (
	"context"
	"encoding/gob"
	"net/http"
	"time"
	"workshop-site/internal/config"
	"workshop-site/internal/data"
	"workshop-site/internal/navigation"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
)

const (
	operatorEmailKey = "operator_email"
	operatorNameKey  = "operator_name"
	navigationKey    = "navigation"
	flashKindKey     = "flash_kind"
	flashMessageKey  = "flash_message"
)

func init() {
	gob.Register(navigation.State{})
}

// Manager is an interface that abstracts the session management implementation.
// *scs.SessionManager satisfies it.
type Manager interface {
	LoadAndSave(next http.Handler) http.Handler
	Put(ctx context.Context, key string, val interface{})
	Get(ctx context.Context, key string) interface{}
	GetString(ctx context.Context, key string) string
	PopString(ctx context.Context, key string) string
	RenewToken(ctx context.Context) error
	Destroy(ctx context.Context) error
	Remove(ctx context.Context, key string)
}

// New creates a session manager backed by the sessions table of db.
func New(cfg config.SessionConfig, secure bool, db *sqlx.DB, driver string) *scs.SessionManager {
	sm := scs.New()
	if driver == "sqlite3" {
		sm.Store = sqlite3store.New(db.DB)
	} else {
		sm.Store = mysqlstore.New(db.DB)
	}
	sm.Lifetime = time.Duration(cfg.Lifetime) * time.Hour
	sm.Cookie.Name = "site_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Persist = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secure
	return sm
}

// LogIn records op as the session's operator. The token is renewed first so a
// token issued before login cannot be reused.
func LogIn(ctx context.Context, m Manager, op *data.Operator) error {
	if err := m.RenewToken(ctx); err != nil {
		return err
	}
	m.Put(ctx, operatorEmailKey, op.Email)
	m.Put(ctx, operatorNameKey, op.Name)
	return nil
}

// LogOut ends the session.
func LogOut(ctx context.Context, m Manager) error {
	return m.Destroy(ctx)
}

// Operator returns the logged-in operator's email and name.
func Operator(ctx context.Context, m Manager) (email, name string, ok bool) {
	email = m.GetString(ctx, operatorEmailKey)
	if email == "" {
		return "", "", false
	}
	return email, m.GetString(ctx, operatorNameKey), true
}

// Navigation returns the visitor's position in the public site.
func Navigation(ctx context.Context, m Manager) navigation.State {
	if st, ok := m.Get(ctx, navigationKey).(navigation.State); ok {
		return st
	}
	return navigation.State{ActiveScreen: navigation.ScreenHome}
}

// SaveNavigation stores the visitor's position.
func SaveNavigation(ctx context.Context, m Manager, st navigation.State) {
	m.Put(ctx, navigationKey, st)
}

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot notification shown on the next render.
type Flash struct {
	Kind    string
	Message string
}

// SetFlash queues a notification, replacing any pending one.
func SetFlash(ctx context.Context, m Manager, kind, message string) {
	m.Put(ctx, flashKindKey, kind)
	m.Put(ctx, flashMessageKey, message)
}

// PopFlash returns and clears the pending notification, if any.
func PopFlash(ctx context.Context, m Manager) *Flash {
	msg := m.PopString(ctx, flashMessageKey)
	kind := m.PopString(ctx, flashKindKey)
	if msg == "" {
		return nil
	}
	return &Flash{Kind: kind, Message: msg}
}
