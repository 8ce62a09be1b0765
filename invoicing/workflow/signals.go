package workflow

const (
	// Signal names
	DraftChangedSignalName    = "draft-changed"
	SubmitCompletedSignalName = "submit-completed"
	DiscardDraftSignalName    = "discard-draft"
)

// DraftChangedSignal notifies the session that the operator touched the
// draft. The activity re-derives the total from the database, so the signal
// carries only the field name for tracing.
type DraftChangedSignal struct {
	Field string `json:"field"`
}

// SubmitCompletedSignal ends the session after property-core accepted the
// invoice.
type SubmitCompletedSignal struct {
	InvoiceID string `json:"invoice_id"`
}

// DiscardDraftSignal contains data for manually discarding a draft.
type DiscardDraftSignal struct {
	Reason      string `json:"reason"`
	DiscardedBy string `json:"discarded_by"`
}
