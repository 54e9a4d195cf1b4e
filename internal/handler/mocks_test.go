//go:build unit || integration

package handler

import (
	"context"
	"io"
	"net/http"
	"workshop-site/internal/contact"
	"workshop-site/internal/middleware"
	"workshop-site/internal/session"
)

// mockSessionManager is a map-backed implementation of the session.Manager interface.
type mockSessionManager struct {
	values        map[string]interface{}
	destroyCalled bool
	renewCalled   bool
}

// Ensure mockSessionManager implements the session.Manager interface.
var _ session.Manager = (*mockSessionManager)(nil)

func newMockSessionManager() *mockSessionManager {
	return &mockSessionManager{values: map[string]interface{}{}}
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
	s := m.GetString(ctx, key)
	delete(m.values, key)
	return s
}
func (m *mockSessionManager) RenewToken(ctx context.Context) error {
	m.renewCalled = true
	return nil
}
func (m *mockSessionManager) Destroy(ctx context.Context) error {
	m.destroyCalled = true
	m.values = map[string]interface{}{}
	return nil
}
func (m *mockSessionManager) Remove(ctx context.Context, key string) { delete(m.values, key) }

func (m *mockSessionManager) flash() *session.Flash {
	return session.PopFlash(context.Background(), m)
}

type mockRenderer struct {
	rendered string
}

var _ middleware.Renderer = (*mockRenderer)(nil)

func (m *mockRenderer) Render(w io.Writer, r *http.Request, name string, data map[string]interface{}) error {
	m.rendered = name
	return nil
}

type mockContactSender struct {
	errToReturn error
	sent        []contact.Message
}

var _ ContactSender = (*mockContactSender)(nil)

func (m *mockContactSender) Send(ctx context.Context, msg contact.Message, remoteIP string) error {
	if m.errToReturn != nil {
		return m.errToReturn
	}
	m.sent = append(m.sent, msg)
	return nil
}
