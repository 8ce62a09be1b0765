package model

type Building struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type Room struct {
	ID         string `json:"id"`
	BuildingID string `json:"building_id"`
	Name       string `json:"name"`
	Occupied   bool   `json:"occupied"`
	BasePrice  int64  `json:"base_price"`
}

// Contract is the active tenancy association required before an invoice can
// be submitted for a room.
type Contract struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	TenantName string `json:"tenant_name,omitempty"`
	Status     string `json:"status"`
}

const ContractStatusActive = "active"

func (c Contract) Active() bool {
	return c.Status == ContractStatusActive
}
