package model

import (
	"time"
)

type InvoiceDraft struct {
	ID            string      `json:"id"`
	Status        DraftStatus `json:"status"`
	BuildingID    string      `json:"building_id,omitempty"`
	RoomID        string      `json:"room_id,omitempty"`
	ContractID    string      `json:"contract_id,omitempty"`
	BillingPeriod string      `json:"billing_period,omitempty"` // YYYY-MM
	DueDate       *time.Time  `json:"due_date,omitempty"`

	ElectricityOldIndex int64 `json:"electricity_old_index"`
	ElectricityNewIndex int64 `json:"electricity_new_index"`

	WaterModel     WaterModel `json:"water_model"`
	WaterOldIndex  int64      `json:"water_old_index"`
	WaterNewIndex  int64      `json:"water_new_index"`
	NumberOfPeople int32      `json:"number_of_people"`

	IncludeRoomRent bool `json:"include_room_rent"`

	// Unit prices copied from the room's rate snapshot at selection time.
	ElectricityUnitPrice int64 `json:"electricity_unit_price"`
	WaterUnitPrice       int64 `json:"water_unit_price"`
	WaterPricePerPerson  int64 `json:"water_price_per_person"`
	RoomBasePrice        int64 `json:"room_base_price"`
	DepositAmount        int64 `json:"deposit_amount"`

	// SnapshotSeq is the generation token for room-detail fetches. A fetch
	// result is applied only while its token matches this value.
	SnapshotSeq int64 `json:"-"`

	// MeterRollback is set when a new meter index is below the old one and
	// the usage was clamped to zero.
	MeterRollback bool `json:"meter_rollback"`

	ComputedTotal int64 `json:"computed_total"`

	ServiceFees []ServiceFee `json:"service_fees"`
	Notes       *string      `json:"notes,omitempty"`

	IdempotencyKey string    `json:"idempotency_key"`
	WorkflowID     *string   `json:"workflow_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DraftStatus string

const (
	DraftStatusEditing    DraftStatus = "editing"
	DraftStatusSubmitting DraftStatus = "submitting"
	DraftStatusSubmitted  DraftStatus = "submitted"
	DraftStatusDiscarded  DraftStatus = "discarded"
)

type WaterModel string

const (
	// WaterModelMetered bills water by meter-index delta.
	WaterModelMetered WaterModel = "metered"
	// WaterModelPerPerson bills a flat price per occupant.
	WaterModelPerPerson WaterModel = "per_person"
)
