package propertycore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := resty.New().
		SetBaseURL(server.URL).
		SetTimeout(2 * time.Second).
		SetHeader("Content-Type", "application/json")
	return newClientWithHTTP(httpClient)
}

func TestListBuildings(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/buildings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"buildings": [{"id": "b1", "name": "Sunrise Block A"}, {"id": "b2", "name": "Sunrise Block B"}]}`))
	}))

	buildings, err := client.ListBuildings(context.Background())

	require.NoError(t, err)
	require.Len(t, buildings, 2)
	assert.Equal(t, "b1", buildings[0].ID)
	assert.Equal(t, "Sunrise Block A", buildings[0].Name)
}

func TestListRooms_EmptyListIsValid(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/buildings/b1/rooms", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rooms": []}`))
	}))

	rooms, err := client.ListRooms(context.Background(), "b1")

	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestGetRoomDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/rooms/r7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"room": {
			"electricity_unit_price": 3500,
			"water_unit_price": 20000,
			"water_model": "metered",
			"base_price": 3000000,
			"deposit_amount": 3000000,
			"last_electricity_index": 1204,
			"default_fees": [{"name": "Trash collection", "amount": 30000}]
		}}`))
	}))

	snapshot, err := client.GetRoomDetail(context.Background(), "r7")

	require.NoError(t, err)
	assert.Equal(t, "r7", snapshot.RoomID)
	assert.Equal(t, int64(3500), snapshot.ElectricityUnitPrice)
	assert.Equal(t, int64(1204), snapshot.LastElectricityIndex)
	require.Len(t, snapshot.DefaultFees, 1)
	assert.Equal(t, "Trash collection", snapshot.DefaultFees[0].Name)
}

func TestGetActiveContract_NotFoundMeansNoContract(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	contract, err := client.GetActiveContract(context.Background(), "r7")

	require.NoError(t, err)
	assert.Nil(t, contract)
}

func TestGetActiveContract_InactiveContractIsNil(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"contract": {"id": "c1", "room_id": "r7", "status": "terminated"}}`))
	}))

	contract, err := client.GetActiveContract(context.Background(), "r7")

	require.NoError(t, err)
	assert.Nil(t, contract)
}

func TestGetActiveContract_Active(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"contract": {"id": "c1", "room_id": "r7", "status": "active", "tenant_name": "Nguyen Van A"}}`))
	}))

	contract, err := client.GetActiveContract(context.Background(), "r7")

	require.NoError(t, err)
	require.NotNil(t, contract)
	assert.Equal(t, "c1", contract.ID)
}

func TestCreateInvoice_Success(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/invoices", r.URL.Path)

		var req CreateInvoiceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "c1", req.ContractID)
		assert.Equal(t, "2026-08-01", req.BillingMonth)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"invoice": {"id": "inv-9", "contract_id": "c1", "total_amount": 605000, "status": "unpaid"}}`))
	}))

	invoice, err := client.CreateInvoice(context.Background(), &CreateInvoiceRequest{
		ContractID:   "c1",
		BillingMonth: "2026-08-01",
		DueDate:      "2026-09-05",
	})

	require.NoError(t, err)
	assert.Equal(t, "inv-9", invoice.ID)
	assert.Equal(t, int64(605000), invoice.TotalAmount)
}

func TestCreateInvoice_ValidationErrorNormalized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors": [{"field": "due_date", "message": "must not be in the past"}]}`))
	}))

	invoice, err := client.CreateInvoice(context.Background(), &CreateInvoiceRequest{ContractID: "c1"})

	require.Error(t, err)
	assert.Nil(t, invoice)

	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, KindValidation, be.Kind)
	require.Len(t, be.Fields, 1)
	assert.Equal(t, "due_date", be.Fields[0].Field)
}

func TestCreateInvoice_TransportError(t *testing.T) {
	httpClient := resty.New().
		SetBaseURL("http://127.0.0.1:1"). // nothing listens here
		SetTimeout(200 * time.Millisecond)
	client := newClientWithHTTP(httpClient)

	_, err := client.CreateInvoice(context.Background(), &CreateInvoiceRequest{ContractID: "c1"})

	require.Error(t, err)
	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, KindTransport, be.Kind)
}
