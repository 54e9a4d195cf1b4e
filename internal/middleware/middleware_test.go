//go:build unit

package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"workshop-site/internal/auth"
	"workshop-site/internal/logger"

	"github.com/casbin/casbin/v2"
	"github.com/gorilla/csrf"
)

type mockSessionManager struct {
	values map[string]interface{}
}

func (m *mockSessionManager) LoadAndSave(next http.Handler) http.Handler { return next }
func (m *mockSessionManager) Put(ctx context.Context, key string, val interface{}) {
	m.values[key] = val
}
func (m *mockSessionManager) Get(ctx context.Context, key string) interface{} { return m.values[key] }
func (m *mockSessionManager) GetString(ctx context.Context, key string) string {
	s, _ := m.values[key].(string)
	return s
}
func (m *mockSessionManager) PopString(ctx context.Context, key string) string {
	return m.GetString(ctx, key)
}
func (m *mockSessionManager) RenewToken(ctx context.Context) error { return nil }
func (m *mockSessionManager) Destroy(ctx context.Context) error    { return nil }
func (m *mockSessionManager) Remove(ctx context.Context, key string) {}

type mockRenderer struct {
	rendered string
	data     map[string]interface{}
}

var _ Renderer = (*mockRenderer)(nil)

func (m *mockRenderer) Render(w io.Writer, r *http.Request, name string, data map[string]interface{}) error {
	m.rendered = name
	m.data = data
	return nil
}

func newEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	m, err := auth.NewModel()
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatalf("NewEnforcer failed: %v", err)
	}
	auth.SeedDefaultPolicies(e, logger.Nop())
	return e
}

func TestAuthorizer(t *testing.T) {
	e := newEnforcer(t)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(GetUserInfo(r.Context()).Role))
	})

	testCases := []struct {
		name       string
		operator   string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"anonymous home", "", "GET", "/", http.StatusOK, "anonymous"},
		{"anonymous dashboard redirects to login", "", "GET", "/admin", http.StatusFound, ""},
		{"anonymous write forbidden", "", "POST", "/admin/pages", http.StatusForbidden, ""},
		{"operator dashboard", "ops@example.com", "GET", "/admin", http.StatusOK, "operator"},
		{"operator public page", "ops@example.com", "GET", "/", http.StatusOK, "operator"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sm := &mockSessionManager{values: map[string]interface{}{}}
			if tc.operator != "" {
				sm.values["operator_email"] = tc.operator
			}
			rr := httptest.NewRecorder()
			Authorizer(e, sm, logger.Nop())(ok).ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))

			if rr.Code != tc.wantStatus {
				t.Errorf("want status %d; got %d", tc.wantStatus, rr.Code)
			}
			if tc.wantBody != "" && rr.Body.String() != tc.wantBody {
				t.Errorf("want role %q; got %q", tc.wantBody, rr.Body.String())
			}
		})
	}
}

func TestError(t *testing.T) {
	view := &mockRenderer{}
	handler := Error(logger.Nop(), view)(func(w http.ResponseWriter, r *http.Request) *AppError {
		return &AppError{Error: errors.New("boom"), Message: "Page not found", Code: http.StatusNotFound}
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/blog/missing", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("want status %d; got %d", http.StatusNotFound, rr.Code)
	}
	if view.rendered != "error.html" || view.data["StatusText"] != "Page not found" {
		t.Errorf("unexpected render %q %v", view.rendered, view.data)
	}
}

func TestError_RecoversPanic(t *testing.T) {
	view := &mockRenderer{}
	handler := Error(logger.Nop(), view)(func(w http.ResponseWriter, r *http.Request) *AppError {
		panic("unexpected")
	})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("want status %d; got %d", http.StatusInternalServerError, rr.Code)
	}
}

func TestDevice(t *testing.T) {
	testCases := []struct {
		agent, query string
		want         bool
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", "", true},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile", "", true},
		{"Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0", "", false},
		{"Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0", "?mobile=1", true},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", "?mobile=0", false},
	}
	for _, tc := range testCases {
		var got bool
		h := Device(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = IsMobile(r.Context())
		}))
		req := httptest.NewRequest("GET", "/"+tc.query, nil)
		req.Header.Set("User-Agent", tc.agent)
		h.ServeHTTP(httptest.NewRecorder(), req)
		if got != tc.want {
			t.Errorf("IsMobile(%q, %q) = %v, want %v", tc.agent, tc.query, got, tc.want)
		}
	}
}

func TestCSRF(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	var token string
	h := CSRF(key, false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = csrf.Token(r)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusOK || token == "" {
		t.Fatalf("expected a token on a safe request, got status %d token %q", rr.Code, token)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("POST", "/contact", nil))
	if rr.Code != http.StatusForbidden {
		t.Errorf("expected a POST without token to be rejected, got %d", rr.Code)
	}
}
