// Package propertycore is the HTTP gateway to the property-core backend,
// which remains the source of truth for buildings, rooms, contracts and
// accepted invoices.
package propertycore

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"encore.app/invoicing/model"
)

// Gateway is the surface the business layer depends on.
type Gateway interface {
	ListBuildings(ctx context.Context) ([]model.Building, error)
	ListRooms(ctx context.Context, buildingID string) ([]model.Room, error)
	GetRoomDetail(ctx context.Context, roomID string) (*model.RoomRateSnapshot, error)
	GetActiveContract(ctx context.Context, roomID string) (*model.Contract, error)
	CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error)
}

type Client struct {
	http *resty.Client
}

var _ Gateway = (*Client)(nil)

// NewClient creates a property-core client. Requests are never retried
// automatically; failed reads are reported and failed submissions must be
// re-triggered by the operator.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: client}
}

// newClientWithHTTP allows tests to point the client at an httptest server.
func newClientWithHTTP(client *resty.Client) *Client {
	return &Client{http: client}
}
