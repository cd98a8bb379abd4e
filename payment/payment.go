// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package payment is the checkout boundary an accepted entry would hand off to.
// Only the Pending processor exists; it contacts nothing.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/notify"
)

const (
	MsgRedirecting = "Redirecting to secure checkout..."
	MsgFailed      = "Something went wrong. Please try again."
)

var ErrIntegrationPending = errors.New("payment integration pending")

// PaymentError is returned by a Processor when a checkout session cannot be created
type PaymentError struct {
	Op  string
	Err error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment %s: %v", e.Op, e.Err)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// Checkout is what a processor is asked to charge for
type Checkout struct {
	Entry    entry.Entry
	Amount   decimal.Decimal
	Currency string
}

// MinorUnits returns the amount in pence/cents as processors expect it
func (c Checkout) MinorUnits() int64 {
	return c.Amount.Shift(2).Round(0).IntPart()
}

// Processor creates hosted checkout sessions and returns the redirect URL
type Processor interface {
	CreateCheckoutSession(ctx context.Context, c Checkout) (redirectURL string, err error)
}

// Pending is the processor used until a real one is configured.
// It contacts nothing.
type Pending struct{}

func (Pending) CreateCheckoutSession(_ context.Context, _ Checkout) (string, error) {
	return "", &PaymentError{Op: "create checkout session", Err: ErrIntegrationPending}
}

// Confirm adapts a Processor into the flow's confirmation step.
// A pending integration is announced the same way as the default flow does.
func Confirm(p Processor, amount decimal.Decimal, currency string) entry.ConfirmFunc {
	return func(ctx context.Context, e entry.Entry, sink notify.Sink) {
		checkout := Checkout{Entry: e, Amount: amount, Currency: currency}
		log := slog.With("reference", e.Reference, "amount_minor", checkout.MinorUnits(), "currency", currency)

		url, err := p.CreateCheckoutSession(ctx, checkout)
		switch {
		case errors.Is(err, ErrIntegrationPending):
			log.Debug("checkout skipped, integration pending")
			sink.Info(entry.MsgPaymentPending)
		case err != nil:
			log.Error("checkout session failed", "error", err)
			sink.Error(MsgFailed)
		default:
			log.Info("checkout session created")
			sink.Info(MsgRedirecting + " " + url)
		}
	}
}
