// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Leisure Luck entry service.

# Handler Types

Each handler is a struct with the session store and competition copy:

  - PageHandler: Landing page and browser form post
  - EntryHandler: JSON API over the visitor's entry flow

Handlers are created via constructor functions:

	entryHandler := handlers.NewEntryHandler(sessions, comp)

Every handler that touches the flow resolves the caller's session first,
creating one (and setting the cookie) when the request carries no valid
token.

# Entry Flow

	PUT  /api/entry/fields/{field} → UpdateField (no validation)
	POST /api/entry/submit         → SubmitEntry

SubmitEntry copies the submitted values into the stored form, then submits.
A validation failure returns 422 with the reason and the error toast; an
accepted entry returns 202 with the success toast while confirmation runs
in the background. The state in a 202 response is always "submitting".

# Notifications

Toasts queue per session. JSON clients drain them with

	GET /api/entry/notifications → GetNotifications

and the landing page drains them on every render.

# Browser Form

	GET  /       → Landing
	POST /enter  → Enter (303 redirect back to /#enter)

Enter also takes a JSON body. A JSON body or an Accept: application/json
header gets the SubmitEntry reply instead of the redirect.

The page refreshes itself while an entry is submitting so the confirmation
toast appears without scripts.
*/
package handlers
