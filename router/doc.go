// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Leisure Luck entry service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(sessions, comp)

# Endpoints

Health:

	GET /health

Pages (browser, session cookie):

	GET  /       - Landing page with the entry form and queued toasts
	POST /enter  - Form post; submits and redirects back to /

Competition (public):

	GET /api/competition - Prize, fee and skill question

Entry flow (session cookie or X-Session-Token):

	GET  /api/entry                - Form and submission state
	PUT  /api/entry/fields/{field} - Update name, email or answer
	POST /api/entry/submit         - Validate and start confirmation
	GET  /api/entry/notifications  - Drain queued notifications

Any other GET path returns 404.

# Handler Initialization

	pageHandler := handlers.NewPageHandler(sessions, comp)
	entryHandler := handlers.NewEntryHandler(sessions, comp)

Both handlers share the session store, so a visitor sees the same form
state on the page and through the API.
*/
package router
