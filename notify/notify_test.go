// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestQueue_DrainOrder(t *testing.T) {
	q := NewQueue(0)
	q.Error("e")
	q.Success("s")
	q.Info("i")

	if q.Len() != 3 {
		t.Fatalf("Expected 3 queued, got %d", q.Len())
	}

	got := q.Drain()
	want := []Kind{KindError, KindSuccess, KindInfo}
	for i, n := range got {
		if n.Kind != want[i] {
			t.Errorf("Item %d: expected %s, got %s", i, want[i], n.Kind)
		}
		if n.At.IsZero() {
			t.Errorf("Item %d: expected timestamp", i)
		}
	}

	if q.Len() != 0 {
		t.Errorf("Expected empty queue after drain, got %d", q.Len())
	}
	if empty := q.Drain(); empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", empty)
	}
}

func TestQueue_DropsOldest(t *testing.T) {
	q := NewQueue(2)
	q.Info("one")
	q.Info("two")
	q.Info("three")

	if q.Len() != 2 {
		t.Errorf("Expected 2 queued, got %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Text != "two" || got[1].Text != "three" {
		t.Errorf("Expected [two three], got %+v", got)
	}
}

func TestQueue_Concurrent(t *testing.T) {
	q := NewQueue(1000)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Success("ok")
			q.Info("later")
		}()
	}
	wg.Wait()

	got := q.Drain()
	if countKind(got, KindSuccess) != 50 || countKind(got, KindInfo) != 50 {
		t.Errorf("Expected 50/50, got %d/%d", countKind(got, KindSuccess), countKind(got, KindInfo))
	}
}

func TestTee(t *testing.T) {
	a, b := NewQueue(0), NewQueue(0)
	sink := Tee(a, nil, b)

	sink.Error("bad")
	sink.Success("good")
	sink.Info("fyi")

	for name, q := range map[string]*Queue{"a": a, "b": b} {
		got := q.Drain()
		if len(got) != 3 {
			t.Errorf("%s: expected 3 notifications, got %d", name, len(got))
		}
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	l.Error("Please fill in all fields")
	l.Info("Payment integration will be set up with Stripe")

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "kind=error") {
		t.Errorf("Expected warn line for error notification, got %q", out)
	}
	if !strings.Contains(out, "kind=info") {
		t.Errorf("Expected info line, got %q", out)
	}
}

func countKind(ns []Notification, kind Kind) int {
	n := 0
	for _, x := range ns {
		if x.Kind == kind {
			n++
		}
	}
	return n
}
