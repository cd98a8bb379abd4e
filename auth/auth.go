// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken     = errors.New("invalid token format")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// NewSessionID creates a random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// mac computes the URL-safe HMAC-SHA256 of value without padding
func mac(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(value))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

// SignSessionID returns "<id>.<mac>" for use as a cookie value
func SignSessionID(id, secret string) string {
	return id + "." + mac(id, secret)
}

// VerifySessionToken checks the signature and returns the session ID
func VerifySessionToken(token, secret string) (string, error) {
	id, sig, ok := strings.Cut(token, ".")
	if !ok || id == "" || sig == "" {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(mac(id, secret))) {
		return "", ErrInvalidSignature
	}
	return id, nil
}

// HashIP creates a one-way hash of an IP address for logs
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// First 16 hex chars are enough to correlate requests
	return hex.EncodeToString(sum[:8])
}
