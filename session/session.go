// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session maps signed cookies to per-visitor entry flows.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/danielhkuo/leisure-luck/auth"
	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/middleware"
	"github.com/danielhkuo/leisure-luck/notify"
)

const (
	CookieName = "ll_session"
	HeaderName = "X-Session-Token"

	DefaultTTL = 30 * time.Minute
)

// Session owns the single entry flow of one visitor
type Session struct {
	ID        string
	Token     string
	Flow      *entry.Flow
	Toasts    *notify.Queue
	CreatedAt time.Time

	lastSeen time.Time // guarded by Store.mu
}

type Config struct {
	Secret       string
	TTL          time.Duration
	CookieSecure bool
	QueueLimit   int
	FlowOptions  []entry.Option
}

// Store keeps sessions in memory; nothing survives a restart
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      Config
	now      func() time.Time
}

func NewStore(cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		now:      time.Now,
	}
}

// Resolve returns the caller's session from the cookie or X-Session-Token header.
// A missing, tampered or expired token gets a fresh session and a new cookie.
func (s *Store) Resolve(w http.ResponseWriter, r *http.Request) *Session {
	if token := tokenFromRequest(r); token != "" {
		id, err := auth.VerifySessionToken(token, s.cfg.Secret)
		if err != nil {
			slog.Warn("rejected session token", "error", err)
		} else if sess, ok := s.touch(id); ok {
			return sess
		}
	}

	sess := s.create()
	slog.Info("session created",
		"session", sess.ID,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), s.cfg.Secret),
	)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.cfg.TTL.Seconds()),
	})
	w.Header().Set(HeaderName, sess.Token)

	return sess
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return r.Header.Get(HeaderName)
}

func (s *Store) touch(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if ok {
		sess.lastSeen = s.now()
	}
	return sess, ok
}

func (s *Store) create() *Session {
	id := auth.NewSessionID()
	log := slog.With("session", id)
	queue := notify.NewQueue(s.cfg.QueueLimit)

	opts := append([]entry.Option{entry.WithLogger(log)}, s.cfg.FlowOptions...)
	now := s.now()
	sess := &Session{
		ID:        id,
		Token:     auth.SignSessionID(id, s.cfg.Secret),
		Flow:      entry.NewFlow(notify.Tee(queue, notify.NewLogger(log)), opts...),
		Toasts:    queue,
		CreatedAt: now,
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	return sess
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune removes sessions idle for longer than the TTL.
// Sessions with a confirmation still pending are kept.
func (s *Store) Prune(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) <= s.cfg.TTL {
			continue
		}
		if sess.Flow.Pending() > 0 {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	return removed
}

// Run prunes on every tick until ctx is done
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if n := s.Prune(t); n > 0 {
				slog.Info("pruned idle sessions", "count", n, "remaining", s.Len())
			}
		}
	}
}

// Wait blocks until every session's scheduled confirmations have run
func (s *Store) Wait() {
	s.mu.Lock()
	flows := make([]*entry.Flow, 0, len(s.sessions))
	for _, sess := range s.sessions {
		flows = append(flows, sess.Flow)
	}
	s.mu.Unlock()

	for _, f := range flows {
		f.Wait()
	}
}
