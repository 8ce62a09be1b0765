package model

import (
	"strings"
	"time"
)

// ServiceFee is an ad hoc named charge on a draft (trash, parking, wifi...).
// Fees with a blank name are kept on the draft while the operator is still
// typing, but are excluded from totals and from the submission payload.
type ServiceFee struct {
	ID          int32     `json:"id"`
	DraftID     string    `json:"draft_id"`
	Name        string    `json:"name"`
	Amount      int64     `json:"amount"`
	Description *string   `json:"description,omitempty"`
	Position    int32     `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Billable reports whether the fee counts toward the total.
func (f ServiceFee) Billable() bool {
	return strings.TrimSpace(f.Name) != "" && f.Amount > 0
}
