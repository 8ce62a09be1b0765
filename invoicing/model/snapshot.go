package model

import (
	"time"
)

// RoomRateSnapshot is read-only pricing reference data for a room, fetched
// from property-core when the room is selected.
type RoomRateSnapshot struct {
	RoomID               string       `json:"room_id"`
	ElectricityUnitPrice int64        `json:"electricity_unit_price"`
	WaterUnitPrice       int64        `json:"water_unit_price"`
	WaterPricePerPerson  int64        `json:"water_price_per_person"`
	WaterModel           WaterModel   `json:"water_model"`
	BasePrice            int64        `json:"base_price"`
	DepositAmount        int64        `json:"deposit_amount"`
	LastElectricityIndex int64        `json:"last_electricity_index"`
	LastWaterIndex       int64        `json:"last_water_index"`
	DefaultFees          []DefaultFee `json:"default_fees,omitempty"`
	FetchedAt            time.Time    `json:"fetched_at"`
}

// DefaultFee seeds the draft's service fees on room selection.
type DefaultFee struct {
	Name        string  `json:"name"`
	Amount      int64   `json:"amount"`
	Description *string `json:"description,omitempty"`
}
