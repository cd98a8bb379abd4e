// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/entry", middleware.WithLogging(handler))

Logs one line per request with method, path, status and duration_ms.
Responses of 500 and above log at error level.

# CORS Middleware

Only configured origins may call the API from a browser:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
	}

A listed origin gets credentials (the session cookie) and can read the
X-Session-Token header. Requests without an Origin pass straight through.
Other origins get no CORS headers and their preflights are refused with 403.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.SubmitEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

HasJSONBody and AcceptsJSON tell API callers apart from browser form posts:
the first reads Content-Type, the second reads Accept.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Only ever logged as a salted hash.
*/
package middleware
