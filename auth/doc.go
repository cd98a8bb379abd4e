// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session identifiers and token signing.

# Session IDs

Session IDs are random UUIDs:

	id := auth.NewSessionID()

# Session Tokens

A token is the session ID followed by an HMAC-SHA256 tag:

	token := auth.SignSessionID(id, secret)   // "<uuid>.<tag>"
	id, err := auth.VerifySessionToken(token, secret)

The tag is URL-safe base64 without padding. Verification fails with
ErrInvalidToken when the token is malformed or the ID is not a UUID, and
with ErrInvalidSignature when the tag does not match. Tokens carry no
expiry; the session store decides how long a session lives.

# IP Hashing

For privacy-preserving request logs:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
