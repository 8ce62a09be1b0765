package propertycore

import (
	"context"
	"time"
)

// CreateInvoiceRequest is the backend's create-invoice shape. The computed
// total travels only as a preview; property-core recomputes from line items.
type CreateInvoiceRequest struct {
	ContractID           string              `json:"contract_id"`
	BillingMonth         string              `json:"billing_month"` // YYYY-MM-01
	DueDate              string              `json:"due_date"`      // YYYY-MM-DD
	ElectricityOldIndex  int64               `json:"electricity_old_index"`
	ElectricityNewIndex  int64               `json:"electricity_new_index"`
	WaterOldIndex        *int64              `json:"water_old_index,omitempty"`
	WaterNewIndex        *int64              `json:"water_new_index,omitempty"`
	NumberOfPeople       int32               `json:"number_of_people"`
	ServiceFees          []ServiceFeePayload `json:"service_fees"`
	ComputedTotalPreview int64               `json:"computed_total_preview"`
	Notes                *string             `json:"notes,omitempty"`
}

type ServiceFeePayload struct {
	Name        string  `json:"name"`
	Amount      int64   `json:"amount"`
	Description *string `json:"description"`
}

// Invoice is the created invoice as returned by property-core.
type Invoice struct {
	ID           string    `json:"id"`
	ContractID   string    `json:"contract_id"`
	BillingMonth string    `json:"billing_month"`
	DueDate      string    `json:"due_date"`
	TotalAmount  int64     `json:"total_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type createInvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

func (c *Client) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error) {
	var out createInvoiceResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/v1/invoices")
	if err != nil {
		return nil, transportError(err)
	}
	if resp.IsError() {
		return nil, parseBackendError(resp.StatusCode(), resp.Body())
	}
	return &out.Invoice, nil
}
