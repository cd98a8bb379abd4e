// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Leisure Luck entry server.

Leisure Luck runs a single skill-based prize competition. Visitors fill in
name, email and an answer to the skill question, submit, and receive toast
notifications while a short confirmation step runs in the background.

# Starting the Server

The server requires a session secret from the environment, a .env file or
a flag:

	SESSION_SECRET=change-me go run .

Or with flags:

	go run . -p 3318 -session-secret change-me -confirm-delay 2s

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): HMAC key for session cookies

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - CONFIRM_DELAY (-confirm-delay): Confirmation delay (default: 2s)
  - SESSION_TTL (-session-ttl): Idle session lifetime (default: 30m)
  - ENTRY_FEE, PRIZE_VALUE: Competition amounts (default: 2, 500)
  - COOKIE_SECURE (-cookie-secure): HTTPS-only cookie (default: false)

# Shutdown

On SIGINT or SIGTERM the server stops accepting requests, then waits for
every scheduled confirmation to deliver its notification before exiting.

# Architecture

  - entry: Form, validation and the submission flow
  - notify: Notification sink, per-session queue, log sink
  - payment: Reserved checkout boundary
  - competition: Prize copy and money labels
  - session: Signed-cookie sessions, one flow per visitor
  - pages: Server-rendered landing page
  - handlers: HTTP handlers (page and JSON API)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session IDs, token signing, IP hashing
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
