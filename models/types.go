package models

import (
	"github.com/danielhkuo/leisure-luck/competition"
	"github.com/danielhkuo/leisure-luck/entry"
	"github.com/danielhkuo/leisure-luck/notify"
)

// Request types

type UpdateFieldRequest struct {
	Value string `json:"value"`
}

type SubmitEntryRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Answer string `json:"answer"`
}

func (r SubmitEntryRequest) Form() entry.Form {
	return entry.Form{Name: r.Name, Email: r.Email, Answer: r.Answer}
}

// Response types

type EntryStateResponse struct {
	State   entry.State `json:"state"`
	Form    entry.Form  `json:"form"`
	Pending int         `json:"pending"`
}

type SubmitEntryResponse struct {
	State         entry.State           `json:"state"`
	Notifications []notify.Notification `json:"notifications"`
}

// Validation failures carry the reason plus the toast the user should see
type SubmitEntryErrorResponse struct {
	Error         string                `json:"error"`
	Reason        string                `json:"reason"`
	State         entry.State           `json:"state"`
	Notifications []notify.Notification `json:"notifications"`
}

type NotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}

type CompetitionResponse struct {
	Competition competition.Competition `json:"competition"`
	FeeLabel    string                  `json:"fee_label"`
	PrizeLabel  string                  `json:"prize_label"`
	SubmitLabel string                  `json:"submit_label"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
