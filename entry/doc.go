// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package entry holds the competition entry form and its submission flow.

# Form

A Form has three free-text fields: name, email and answer. UpdateField
overwrites one field and never validates:

	flow.UpdateField(entry.FieldEmail, "jo@example.com")

Validate checks, in order, that no field is empty (ErrMissingFields) and
that the email contains "@" (ErrInvalidEmail). The answer is never checked
against a correct value.

# Submission

	err := flow.Submit(form)

A rejected form reports one error notification and leaves the state Idle.
An accepted form reports one success notification, moves to Submitting and
schedules a confirmation after the configured delay (default 2s). Submit
returns before the confirmation runs.

When the confirmation runs it calls the ConfirmFunc (by default an info
notification that payment is not yet integrated) and moves back to Idle.
Every completing confirmation sets Idle, even if a later submit is still
pending; Pending reports how many are outstanding.

# Concurrency

Flow is safe for concurrent use. Its mutex is never held while notifying
or confirming, so a sink may call back into the flow. Wait blocks until
every scheduled confirmation has finished.

# Testing

WithScheduler replaces the timer so tests can decide when confirmations
run:

	var held []func()
	flow := entry.NewFlow(sink, entry.WithScheduler(func(_ time.Duration, fn func()) {
		held = append(held, fn)
	}))
*/
package entry
