// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package entry

import (
	"errors"
	"strings"
	"time"
)

// Form field identifiers
const (
	FieldName   Field = "name"
	FieldEmail  Field = "email"
	FieldAnswer Field = "answer"
)

// User-facing messages emitted by the flow
const (
	MsgMissingFields  = "Please fill in all fields"
	MsgInvalidEmail   = "Please enter a valid email address"
	MsgSubmitted      = "Entry submitted! Redirecting to payment..."
	MsgPaymentPending = "Payment integration will be set up with Stripe"
)

var (
	ErrMissingFields = &ValidationError{Reason: "missing fields", Message: MsgMissingFields}
	ErrInvalidEmail  = &ValidationError{Reason: "invalid email", Message: MsgInvalidEmail}
	ErrUnknownField  = errors.New("unknown field")
)

// ValidationError is returned by Submit when the form is rejected.
// Reason is stable for callers; Message is what the user sees.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type Field string

// Fields lists the form fields in display order
var Fields = []Field{FieldName, FieldEmail, FieldAnswer}

// ParseField maps a field identifier to a Field
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldEmail, FieldAnswer:
		return f, nil
	}
	return "", ErrUnknownField
}

// Form holds the three entry fields
type Form struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Answer string `json:"answer"`
}

// With returns a copy of the form with one field overwritten
func (f Form) With(field Field, value string) (Form, error) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldAnswer:
		f.Answer = value
	default:
		return f, ErrUnknownField
	}
	return f, nil
}

// Get returns the value of one field
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldAnswer:
		return f.Answer
	}
	return ""
}

// Validate checks that every field is filled in, then that the email has an "@".
// The answer is not checked against any correct value.
func (f Form) Validate() error {
	if f.Name == "" || f.Email == "" || f.Answer == "" {
		return ErrMissingFields
	}
	if !strings.Contains(f.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// Entry is a validated form handed to the confirmation step
type Entry struct {
	Reference   string    `json:"reference"`
	Form        Form      `json:"form"`
	SubmittedAt time.Time `json:"submitted_at"`
}
