// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package notify delivers user-facing toasts: error, success and info.
package notify

import (
	"log/slog"
	"sync"
	"time"
)

// Notification kinds
const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

// DefaultQueueLimit bounds a Queue created with a zero limit
const DefaultQueueLimit = 32

type Kind string

// Notification is one user-facing toast
type Notification struct {
	Kind Kind      `json:"kind"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Sink receives user-facing messages
type Sink interface {
	Error(text string)
	Success(text string)
	Info(text string)
}

// Queue buffers notifications until they are drained by the page or API.
// When full, the oldest notification is dropped.
type Queue struct {
	mu    sync.Mutex
	items []Notification
	limit int
	now   func() time.Time
}

func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = DefaultQueueLimit
	}
	return &Queue{limit: limit, now: time.Now}
}

func (q *Queue) Error(text string)   { q.push(KindError, text) }
func (q *Queue) Success(text string) { q.push(KindSuccess, text) }
func (q *Queue) Info(text string)    { q.push(KindInfo, text) }

func (q *Queue) push(kind Kind, text string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) >= q.limit {
		q.items = q.items[1:]
	}
	q.items = append(q.items, Notification{Kind: kind, Text: text, At: q.now()})
}

// Drain returns all queued notifications in arrival order and empties the queue
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.items
	q.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Logger writes notifications to a structured logger.
// Errors are logged at Warn since they are user mistakes, not server faults.
type Logger struct {
	Log *slog.Logger
}

func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{Log: l}
}

func (l *Logger) Error(text string)   { l.Log.Warn("notification", "kind", KindError, "text", text) }
func (l *Logger) Success(text string) { l.Log.Info("notification", "kind", KindSuccess, "text", text) }
func (l *Logger) Info(text string)    { l.Log.Info("notification", "kind", KindInfo, "text", text) }

type tee []Sink

// Tee fans every notification out to all sinks, in order
func Tee(sinks ...Sink) Sink {
	out := make(tee, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (t tee) Error(text string) {
	for _, s := range t {
		s.Error(text)
	}
}

func (t tee) Success(text string) {
	for _, s := range t {
		s.Success(text)
	}
}

func (t tee) Info(text string) {
	for _, s := range t {
		s.Info(text)
	}
}
