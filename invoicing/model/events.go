package model

import (
	"time"
)

// InvoiceSubmittedEvent is published to the reporting pipeline after
// property-core accepts an invoice.
type InvoiceSubmittedEvent struct {
	DraftID       string    `json:"draft_id"`
	InvoiceID     string    `json:"invoice_id"`
	ContractID    string    `json:"contract_id"`
	RoomID        string    `json:"room_id"`
	BillingMonth  string    `json:"billing_month"`
	ComputedTotal int64     `json:"computed_total"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// DraftDiscardedEvent is published when a draft is discarded, manually or by
// the session workflow's idle timer.
type DraftDiscardedEvent struct {
	DraftID     string    `json:"draft_id"`
	Reason      string    `json:"reason"`
	DiscardedAt time.Time `json:"discarded_at"`
}
