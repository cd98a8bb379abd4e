// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/danielhkuo/leisure-luck/competition"
	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/middleware"
	"github.com/danielhkuo/leisure-luck/models"
	"github.com/danielhkuo/leisure-luck/pages"
	"github.com/danielhkuo/leisure-luck/session"
)

type PageHandler struct {
	sessions *session.Store
	comp     competition.Competition
}

func NewPageHandler(sessions *session.Store, comp competition.Competition) *PageHandler {
	return &PageHandler{sessions: sessions, comp: comp}
}

// Landing handles GET /
// Renders the page with the session's form and any queued toasts
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resolve(w, r)

	data := pages.LandingData{
		Competition: h.comp,
		Form:        sess.Flow.Form(),
		State:       sess.Flow.State(),
		Toasts:      sess.Toasts.Drain(),
	}

	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(pages.Component(pages.Landing(data))).ServeHTTP(w, r)
}

// Enter handles POST /enter
// Takes the page's form post (or a JSON body), submits, and redirects back so a
// reload never resubmits. JSON callers get the same body as POST /api/entry/submit.
func (h *PageHandler) Enter(w http.ResponseWriter, r *http.Request) {
	jsonBody := middleware.HasJSONBody(r)

	form, err := readEnterForm(w, r, jsonBody)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	sess := h.sessions.Resolve(w, r)
	if err := syncForm(sess.Flow, form); err != nil {
		slog.Error("failed to store entry form", "session", sess.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit entry")
		return
	}

	// Validation errors are reported through the session's toasts
	err = sess.Flow.SubmitCurrent()

	if jsonBody || middleware.AcceptsJSON(r) {
		writeSubmitResult(w, sess, err)
		return
	}

	http.Redirect(w, r, "/#enter", http.StatusSeeOther)
}

func readEnterForm(w http.ResponseWriter, r *http.Request, jsonBody bool) (entry.Form, error) {
	if jsonBody {
		var req models.SubmitEntryRequest
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			return entry.Form{}, err
		}
		return req.Form(), nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return entry.Form{}, err
	}

	var form entry.Form
	for _, f := range entry.Fields {
		var err error
		if form, err = form.With(f, r.PostFormValue(string(f))); err != nil {
			return entry.Form{}, err
		}
	}
	return form, nil
}
