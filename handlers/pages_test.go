// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/leisure-luck/competition"
	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/models"
	"github.com/danielhkuo/leisure-luck/notify"
	"github.com/danielhkuo/leisure-luck/session"
	"github.com/danielhkuo/leisure-luck/testutil"
)

func TestLanding(t *testing.T) {
	store := testutil.NewTestStore(t, &testutil.ManualScheduler{})
	handler := NewPageHandler(store, competition.Default())

	w := httptest.NewRecorder()
	handler.Landing(w, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected text/html, got %q", ct)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("Expected Cache-Control no-store, got %q", cc)
	}

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			found = true
			if !c.HttpOnly {
				t.Error("Session cookie should be HttpOnly")
			}
		}
	}
	if !found {
		t.Error("Expected session cookie")
	}

	body := w.Body.String()
	for _, want := range []string{
		competition.Default().SkillQuestion,
		html.EscapeString(competition.Default().SubmitLabel()),
		`action="/enter"`,
		`name="email"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}

func TestLanding_DrainsToasts(t *testing.T) {
	store := testutil.NewTestStore(t, &testutil.ManualScheduler{})
	handler := NewPageHandler(store, competition.Default())
	sess := testutil.NewSession(t, store)

	sess.Flow.Submit(entry.Form{Email: "a@b.com"})
	if sess.Toasts.Len() != 1 {
		t.Fatalf("Expected 1 queued toast, got %d", sess.Toasts.Len())
	}

	req := testutil.MakeRequest("GET", "/", nil, testutil.SessionHeaders(sess))
	w := httptest.NewRecorder()
	handler.Landing(w, req)

	if !strings.Contains(w.Body.String(), entry.MsgMissingFields) {
		t.Error("Expected error toast on page")
	}
	if sess.Toasts.Len() != 0 {
		t.Errorf("Expected toasts drained, %d left", sess.Toasts.Len())
	}

	// Second load shows nothing
	w = httptest.NewRecorder()
	handler.Landing(w, testutil.MakeRequest("GET", "/", nil, testutil.SessionHeaders(sess)))
	if strings.Contains(w.Body.String(), entry.MsgMissingFields) {
		t.Error("Toast should only be shown once")
	}
}

func TestLanding_KeepsForm(t *testing.T) {
	store := testutil.NewTestStore(t, &testutil.ManualScheduler{})
	handler := NewPageHandler(store, competition.Default())
	sess := testutil.NewSession(t, store)
	sess.Flow.UpdateField(entry.FieldName, "Jo Bloggs")

	w := httptest.NewRecorder()
	handler.Landing(w, testutil.MakeRequest("GET", "/", nil, testutil.SessionHeaders(sess)))

	if !strings.Contains(w.Body.String(), `value="Jo Bloggs"`) {
		t.Error("Expected stored name in form")
	}
}

func TestEnter(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedKind  notify.Kind
		expectedCount int
	}{
		{
			name:          "valid entry",
			body:          "name=Jo&email=jo%40example.com&answer=1960",
			expectedKind:  notify.KindSuccess,
			expectedCount: 1,
		},
		{
			name:          "missing answer",
			body:          "name=Jo&email=jo%40example.com",
			expectedKind:  notify.KindError,
			expectedCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewTestStore(t, &testutil.ManualScheduler{})
			handler := NewPageHandler(store, competition.Default())
			sess := testutil.NewSession(t, store)

			req := httptest.NewRequest("POST", "/enter", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set(session.HeaderName, sess.Token)
			w := httptest.NewRecorder()
			handler.Enter(w, req)

			testutil.AssertStatus(t, w, http.StatusSeeOther)

			toasts := sess.Toasts.Drain()
			if testutil.CountKind(toasts, tt.expectedKind) != tt.expectedCount {
				t.Errorf("Expected %d %s toast, got %+v", tt.expectedCount, tt.expectedKind, toasts)
			}
		})
	}
}

func TestEnter_AcceptsJSON(t *testing.T) {
	store := testutil.NewTestStore(t, &testutil.ManualScheduler{})
	handler := NewPageHandler(store, competition.Default())

	req := httptest.NewRequest("POST", "/enter", strings.NewReader("name=Jo&email=jo&answer=1960"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	handler.Enter(w, req)

	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

	var resp models.SubmitEntryErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Reason != "invalid email" {
		t.Errorf("Expected invalid email, got %q", resp.Reason)
	}
	if len(resp.Notifications) != 1 || resp.Notifications[0].Text != entry.MsgInvalidEmail {
		t.Errorf("Expected email toast, got %+v", resp.Notifications)
	}
}

func TestEnter_JSONBody(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedState  entry.State
		expectedForm   entry.Form
	}{
		{
			name:           "valid entry",
			body:           `{"name":"Jo","email":"jo@example.com","answer":"1960"}`,
			expectedStatus: http.StatusAccepted,
			expectedState:  entry.Submitting,
			expectedForm:   entry.Form{Name: "Jo", Email: "jo@example.com", Answer: "1960"},
		},
		{
			name:           "invalid email",
			body:           `{"name":"Jo","email":"jo","answer":"1960"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedState:  entry.Idle,
			expectedForm:   entry.Form{Name: "Jo", Email: "jo", Answer: "1960"},
		},
		{
			name:           "malformed JSON keeps stored form",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedState:  entry.Idle,
			expectedForm:   entry.Form{Name: "Typed Earlier"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewTestStore(t, &testutil.ManualScheduler{})
			handler := NewPageHandler(store, competition.Default())
			sess := testutil.NewSession(t, store)
			sess.Flow.UpdateField(entry.FieldName, "Typed Earlier")

			req := httptest.NewRequest("POST", "/enter", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(session.HeaderName, sess.Token)
			w := httptest.NewRecorder()
			handler.Enter(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected JSON reply, got %q", ct)
			}
			if got := sess.Flow.Form(); got != tt.expectedForm {
				t.Errorf("Expected form %+v, got %+v", tt.expectedForm, got)
			}
			if got := sess.Flow.State(); got != tt.expectedState {
				t.Errorf("Expected state %s, got %s", tt.expectedState, got)
			}
		})
	}
}

func TestEnter_BodyTooLarge(t *testing.T) {
	store := testutil.NewTestStore(t, &testutil.ManualScheduler{})
	handler := NewPageHandler(store, competition.Default())

	body := "name=" + strings.Repeat("x", 128<<10)
	req := httptest.NewRequest("POST", "/enter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.Enter(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
