// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/leisure-luck/notify"
)

// DefaultDelay is how long the simulated confirmation takes
const DefaultDelay = 2000 * time.Millisecond

// Submission states
const (
	Idle State = iota
	Submitting
)

type State int

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*s = Idle
	case "submitting":
		*s = Submitting
	default:
		return fmt.Errorf("unknown state %q", b)
	}
	return nil
}

// ConfirmFunc runs once the confirmation delay has elapsed.
// It is the hand-off point to a payment processor.
type ConfirmFunc func(ctx context.Context, e Entry, sink notify.Sink)

// Scheduler runs fn once after d without blocking the caller
type Scheduler func(d time.Duration, fn func())

// AnnouncePending is the default ConfirmFunc: payment is not wired yet,
// so it only tells the user so.
func AnnouncePending(_ context.Context, _ Entry, sink notify.Sink) {
	sink.Info(MsgPaymentPending)
}

func afterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

type Option func(*Flow)

func WithDelay(d time.Duration) Option {
	return func(f *Flow) { f.delay = d }
}

func WithConfirm(fn ConfirmFunc) Option {
	return func(f *Flow) {
		if fn != nil {
			f.confirm = fn
		}
	}
}

func WithScheduler(s Scheduler) Option {
	return func(f *Flow) {
		if s != nil {
			f.schedule = s
		}
	}
}

// WithLogger sets the logger used for flow events
func WithLogger(l *slog.Logger) Option {
	return func(f *Flow) {
		if l != nil {
			f.log = l
		}
	}
}

// Flow is one session's entry form and submission state.
// The lock is never held while notifying or confirming.
type Flow struct {
	mu      sync.Mutex
	form    Form
	state   State
	pending int
	wg      sync.WaitGroup

	sink     notify.Sink
	delay    time.Duration
	confirm  ConfirmFunc
	schedule Scheduler
	log      *slog.Logger
	now      func() time.Time
}

func NewFlow(sink notify.Sink, opts ...Option) *Flow {
	f := &Flow{
		sink:     sink,
		delay:    DefaultDelay,
		confirm:  AnnouncePending,
		schedule: afterFunc,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// UpdateField overwrites one field; the others are left as they are.
// Values are not validated here.
func (f *Flow) UpdateField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	form, err := f.form.With(field, value)
	if err != nil {
		return fmt.Errorf("update %q: %w", field, err)
	}
	f.form = form
	return nil
}

func (f *Flow) Form() Form {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Pending returns the number of scheduled confirmations that have not run yet
func (f *Flow) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

// Wait blocks until every scheduled confirmation has run
func (f *Flow) Wait() {
	f.wg.Wait()
}

// SubmitCurrent submits the form built up by UpdateField
func (f *Flow) SubmitCurrent() error {
	return f.Submit(f.Form())
}

// Submit validates form and, if it passes, moves to Submitting and schedules
// the confirmation. It returns as soon as the confirmation is scheduled.
// Submitting again while a confirmation is pending starts another cycle.
func (f *Flow) Submit(form Form) error {
	if err := form.Validate(); err != nil {
		f.log.Debug("entry rejected", "reason", err.Error())
		msg := err.Error()
		var ve *ValidationError
		if errors.As(err, &ve) {
			msg = ve.Message
		}
		f.sink.Error(msg)
		return err
	}

	e := Entry{
		Reference:   uuid.NewString(),
		Form:        form,
		SubmittedAt: f.now(),
	}

	f.mu.Lock()
	f.state = Submitting
	f.pending++
	f.wg.Add(1)
	f.mu.Unlock()

	f.log.Info("entry submitted", "reference", e.Reference)
	f.sink.Success(MsgSubmitted)

	f.schedule(f.delay, func() { f.finish(e) })
	return nil
}

// finish returns the flow to Idle even if the confirmation panics.
// The panic is logged and not re-raised.
func (f *Flow) finish(e Entry) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("entry confirmation panicked", "reference", e.Reference, "panic", r)
		}

		f.mu.Lock()
		f.state = Idle
		f.pending--
		f.mu.Unlock()

		f.wg.Done()
	}()

	f.confirm(context.Background(), e, f.sink)
	f.log.Info("entry confirmation finished", "reference", e.Reference)
}
