// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/leisure-luck/cliparse"
	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/notify"
	"github.com/danielhkuo/leisure-luck/session"
)

// TestSecret signs session cookies in tests
const TestSecret = "test-session-secret"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		SessionSecret: TestSecret,
		ConfirmDelay:  10 * time.Millisecond,
		SessionTTL:    time.Minute,
	}
}

// ManualScheduler holds confirmations until Fire is called, so tests can
// observe the Submitting state deterministically
type ManualScheduler struct {
	mu  sync.Mutex
	fns []func()
}

func (m *ManualScheduler) Schedule(_ time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fns = append(m.fns, fn)
}

// Fire runs every held confirmation and returns how many ran
func (m *ManualScheduler) Fire() int {
	m.mu.Lock()
	fns := m.fns
	m.fns = nil
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// NewTestStore creates a session store whose confirmations wait for sched.Fire
func NewTestStore(t *testing.T, sched *ManualScheduler) *session.Store {
	t.Helper()
	cfg := GetTestConfig()
	return session.NewStore(session.Config{
		Secret:      cfg.SessionSecret,
		TTL:         cfg.SessionTTL,
		FlowOptions: []entry.Option{entry.WithScheduler(sched.Schedule)},
	})
}

// NewSession creates a session and returns it with its token
func NewSession(t *testing.T, store *session.Store) *session.Session {
	t.Helper()
	return store.Resolve(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
}

// CountKind returns how many notifications of kind are in ns
func CountKind(ns []notify.Notification, kind notify.Kind) int {
	n := 0
	for _, x := range ns {
		if x.Kind == kind {
			n++
		}
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// SessionHeaders returns headers that attach a request to sess
func SessionHeaders(sess *session.Session) map[string]string {
	return map[string]string{session.HeaderName: sess.Token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
