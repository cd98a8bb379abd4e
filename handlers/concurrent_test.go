// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/leisure-luck/competition"
	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/models"
	"github.com/danielhkuo/leisure-luck/session"
	"github.com/danielhkuo/leisure-luck/testutil"
)

// TestConcurrentSubmissionsAcrossSessions verifies that simultaneous
// submissions from different visitors each get their own flow and toasts
func TestConcurrentSubmissionsAcrossSessions(t *testing.T) {
	sched := &testutil.ManualScheduler{}
	store := testutil.NewTestStore(t, sched)
	entryHandler := NewEntryHandler(store, competition.Default())

	numVisitors := 10
	sessions := make([]*session.Session, numVisitors)
	for i := range sessions {
		sessions[i] = testutil.NewSession(t, store)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVisitors; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			submit := models.SubmitEntryRequest{
				Name:   "Visitor" + string(rune('A'+idx)),
				Email:  "visitor@example.com",
				Answer: "1960",
			}
			req := testutil.MakeRequest("POST", "/api/entry/submit", submit, testutil.SessionHeaders(sessions[idx]))
			w := httptest.NewRecorder()
			entryHandler.SubmitEntry(w, req)

			if w.Code == http.StatusAccepted {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVisitors {
		t.Errorf("Expected %d accepted submissions, got %d", numVisitors, successCount.Load())
	}
	if store.Len() != numVisitors {
		t.Errorf("Expected %d sessions, got %d", numVisitors, store.Len())
	}

	if n := sched.Fire(); n != numVisitors {
		t.Errorf("Expected %d confirmations, got %d", numVisitors, n)
	}

	for i, sess := range sessions {
		if sess.Flow.State() != entry.Idle {
			t.Errorf("Session %d: expected idle, got %s", i, sess.Flow.State())
		}
		if want := "Visitor" + string(rune('A'+i)); sess.Flow.Form().Name != want {
			t.Errorf("Session %d: expected name %q, got %q", i, want, sess.Flow.Form().Name)
		}
		// Only the info toast from this session's confirmation remains
		if n := sess.Toasts.Len(); n != 1 {
			t.Errorf("Session %d: expected 1 queued toast, got %d", i, n)
		}
	}
}

// TestConcurrentSubmissionsSameSession verifies repeated submits from one
// visitor each schedule a confirmation
func TestConcurrentSubmissionsSameSession(t *testing.T) {
	sched := &testutil.ManualScheduler{}
	store := testutil.NewTestStore(t, sched)
	entryHandler := NewEntryHandler(store, competition.Default())
	sess := testutil.NewSession(t, store)

	numSubmits := 8
	submit := models.SubmitEntryRequest{Name: "Jo", Email: "jo@example.com", Answer: "1960"}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numSubmits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/api/entry/submit", submit, testutil.SessionHeaders(sess))
			w := httptest.NewRecorder()
			entryHandler.SubmitEntry(w, req)
			if w.Code == http.StatusAccepted {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numSubmits {
		t.Errorf("Expected %d accepted submissions, got %d", numSubmits, successCount.Load())
	}
	if sess.Flow.Pending() != numSubmits {
		t.Errorf("Expected %d pending confirmations, got %d", numSubmits, sess.Flow.Pending())
	}
	if sess.Flow.State() != entry.Submitting {
		t.Errorf("Expected submitting, got %s", sess.Flow.State())
	}

	if n := sched.Fire(); n != numSubmits {
		t.Errorf("Expected %d confirmations, got %d", numSubmits, n)
	}
	if sess.Flow.State() != entry.Idle || sess.Flow.Pending() != 0 {
		t.Errorf("Expected idle with nothing pending, got %s/%d", sess.Flow.State(), sess.Flow.Pending())
	}
}

// TestConcurrentFieldUpdates verifies field writes and reads do not race
func TestConcurrentFieldUpdates(t *testing.T) {
	store := testutil.NewTestStore(t, &testutil.ManualScheduler{})
	entryHandler := NewEntryHandler(store, competition.Default())
	sess := testutil.NewSession(t, store)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			field := string(entry.Fields[idx%len(entry.Fields)])
			req := testutil.MakeRequest("PUT", "/api/entry/fields/"+field, models.UpdateFieldRequest{Value: "v"}, testutil.SessionHeaders(sess))
			req.SetPathValue("field", field)
			entryHandler.UpdateField(httptest.NewRecorder(), req)
		}(i)
		go func() {
			defer wg.Done()
			entryHandler.GetEntry(httptest.NewRecorder(), testutil.MakeRequest("GET", "/api/entry", nil, testutil.SessionHeaders(sess)))
		}()
	}
	wg.Wait()

	if got := sess.Flow.Form(); got != (entry.Form{Name: "v", Email: "v", Answer: "v"}) {
		t.Errorf("Expected every field set, got %+v", got)
	}
}
