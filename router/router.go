// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/leisure-luck/competition"
	"github.com/danielhkuo/leisure-luck/handlers"
	"github.com/danielhkuo/leisure-luck/middleware"
	"github.com/danielhkuo/leisure-luck/session"
)

func NewRouter(sessions *session.Store, comp competition.Competition) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(sessions, comp)
	entryHandler := handlers.NewEntryHandler(sessions, comp)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Landing page and browser form post
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Landing))
	mux.HandleFunc("POST /enter", middleware.WithLogging(pageHandler.Enter))

	// Competition content (public, static)
	mux.HandleFunc("GET /api/competition", middleware.WithLogging(entryHandler.GetCompetition))

	// Entry flow (per session)
	mux.HandleFunc("GET /api/entry", middleware.WithLogging(entryHandler.GetEntry))
	mux.HandleFunc("PUT /api/entry/fields/{field}", middleware.WithLogging(entryHandler.UpdateField))
	mux.HandleFunc("POST /api/entry/submit", middleware.WithLogging(entryHandler.SubmitEntry))
	mux.HandleFunc("GET /api/entry/notifications", middleware.WithLogging(entryHandler.GetNotifications))

	return mux
}
