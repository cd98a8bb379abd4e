// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/leisure-luck/competition"
	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/middleware"
	"github.com/danielhkuo/leisure-luck/models"
	"github.com/danielhkuo/leisure-luck/session"
)

type EntryHandler struct {
	sessions *session.Store
	comp     competition.Competition
}

func NewEntryHandler(sessions *session.Store, comp competition.Competition) *EntryHandler {
	return &EntryHandler{sessions: sessions, comp: comp}
}

// GetCompetition handles GET /api/competition
func (h *EntryHandler) GetCompetition(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CompetitionResponse{
		Competition: h.comp,
		FeeLabel:    h.comp.FeeLabel(),
		PrizeLabel:  h.comp.PrizeLabel(),
		SubmitLabel: h.comp.SubmitLabel(),
	})
}

// GetEntry handles GET /api/entry
// Returns the session's form and submission state
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resolve(w, r)

	middleware.JSONResponse(w, http.StatusOK, models.EntryStateResponse{
		State:   sess.Flow.State(),
		Form:    sess.Flow.Form(),
		Pending: sess.Flow.Pending(),
	})
}

// UpdateField handles PUT /api/entry/fields/{field}
// Overwrites one field; values are not validated until submit
func (h *EntryHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	field, err := entry.ParseField(r.PathValue("field"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "field must be one of: name, email, answer")
		return
	}

	var req models.UpdateFieldRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess := h.sessions.Resolve(w, r)
	if err := sess.Flow.UpdateField(field, req.Value); err != nil {
		slog.Error("failed to update field", "session", sess.ID, "field", field, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update field")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EntryStateResponse{
		State:   sess.Flow.State(),
		Form:    sess.Flow.Form(),
		Pending: sess.Flow.Pending(),
	})
}

// SubmitEntry handles POST /api/entry/submit
// Validates and starts the confirmation; returns before it completes
func (h *EntryHandler) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sess := h.sessions.Resolve(w, r)
	form := req.Form()

	// Keep the stored form in step with what was submitted
	if err := syncForm(sess.Flow, form); err != nil {
		slog.Error("failed to store entry form", "session", sess.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit entry")
		return
	}

	writeSubmitResult(w, sess, sess.Flow.Submit(form))
}

func syncForm(flow *entry.Flow, form entry.Form) error {
	for _, f := range entry.Fields {
		if err := flow.UpdateField(f, form.Get(f)); err != nil {
			return err
		}
	}
	return nil
}

// writeSubmitResult answers 202 or 422 with the toasts the submit produced
func writeSubmitResult(w http.ResponseWriter, sess *session.Session, err error) {
	var ve *entry.ValidationError
	if errors.As(err, &ve) {
		middleware.JSONResponse(w, http.StatusUnprocessableEntity, models.SubmitEntryErrorResponse{
			Error:         http.StatusText(http.StatusUnprocessableEntity),
			Reason:        ve.Reason,
			State:         sess.Flow.State(),
			Notifications: sess.Toasts.Drain(),
		})
		return
	}
	if err != nil {
		slog.Error("failed to submit entry", "session", sess.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit entry")
		return
	}

	middleware.JSONResponse(w, http.StatusAccepted, models.SubmitEntryResponse{
		State:         sess.Flow.State(),
		Notifications: sess.Toasts.Drain(),
	})
}

// GetNotifications handles GET /api/entry/notifications
// Drains the session's queued notifications
func (h *EntryHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Resolve(w, r)

	middleware.JSONResponse(w, http.StatusOK, models.NotificationsResponse{
		Notifications: sess.Toasts.Drain(),
	})
}
