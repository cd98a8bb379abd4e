// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - SessionSecret: Secret for signing session cookies (required)
  - ConfirmDelay: Simulated entry confirmation delay (default: 2s)
  - SessionTTL: Idle session lifetime (default: 30m)
  - EntryFee: Entry fee as a decimal (default: 2)
  - PrizeValue: Advertised prize value (default: 500)
  - CookieSecure: Send the session cookie over HTTPS only (default: false)
  - AllowedOrigins: Origins allowed to call the API cross-origin (default: none)

# CLI Flags

	-p               Server port
	-session-secret  Session cookie secret
	-confirm-delay   Confirmation delay (Go duration)
	-session-ttl     Idle session lifetime (Go duration)
	-entry-fee       Entry fee
	-prize-value     Prize value
	-cookie-secure   true/false
	-cors-origins    Comma-separated origins

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	SESSION_SECRET → -session-secret
	CONFIRM_DELAY  → -confirm-delay
	SESSION_TTL    → -session-ttl
	ENTRY_FEE      → -entry-fee
	PRIZE_VALUE    → -prize-value
	COOKIE_SECURE  → -cookie-secure
	CORS_ORIGINS   → -cors-origins

CLI flags take precedence over environment variables. LoadEnvFile reads a
.env file first; variables already in the environment are not overwritten.

# Validation

ParseFlags returns an error if:

  - SESSION_SECRET is missing
  - a duration, amount or boolean does not parse
  - the confirmation delay is negative or the session TTL is not positive

# Example

	// In main.go
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	mux := router.NewRouter(sessions, comp)
*/
package cliparse
