// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - UpdateFieldRequest: value
  - SubmitEntryRequest: name, email, answer

# Response Types

Types for JSON responses:

  - EntryStateResponse: state, form, pending
  - SubmitEntryResponse: state, notifications
  - SubmitEntryErrorResponse: error, reason, state, notifications
  - NotificationsResponse: notifications
  - CompetitionResponse: competition, fee_label, prize_label, submit_label
  - ErrorResponse: error, message

Domain types live with their packages (entry.Form, notify.Notification,
competition.Competition); the response types embed them directly.
*/
package models
