package pricing

import (
	"encore.app/invoicing/model"
)

// Inputs are the fields of a draft that contribute to its total. All amounts
// are integer currency units; no fractional subunits are modeled.
type Inputs struct {
	ElectricityOldIndex  int64
	ElectricityNewIndex  int64
	ElectricityUnitPrice int64

	WaterModel          model.WaterModel
	WaterOldIndex       int64
	WaterNewIndex       int64
	WaterUnitPrice      int64
	NumberOfPeople      int32
	WaterPricePerPerson int64

	IncludeRoomRent bool
	RoomBasePrice   int64

	Fees []model.ServiceFee
}

// Breakdown is the derived cost decomposition of a draft. Recomputing with
// unchanged inputs always yields the same breakdown.
type Breakdown struct {
	ElectricityUsage int64 `json:"electricity_usage"`
	ElectricityCost  int64 `json:"electricity_cost"`
	WaterUsage       int64 `json:"water_usage"`
	WaterCost        int64 `json:"water_cost"`
	ServiceFeesTotal int64 `json:"service_fees_total"`
	RoomRent         int64 `json:"room_rent"`
	Total            int64 `json:"total"`

	// MeterRollback is set when any new index was below its old index and
	// the usage was clamped to zero. Surfaced as a warning, not an error:
	// the source may be a genuine meter rollover or a data-entry mistake,
	// and the operator is never blocked on it.
	MeterRollback bool `json:"meter_rollback"`
}

// UsageDelta returns the billable meter usage, clamped at zero, and whether
// the clamp fired.
func UsageDelta(oldIndex, newIndex int64) (int64, bool) {
	if newIndex < oldIndex {
		return 0, true
	}
	return newIndex - oldIndex, false
}

// Compute derives the full cost breakdown for one draft.
func Compute(in Inputs) Breakdown {
	var b Breakdown

	usage, rollback := UsageDelta(in.ElectricityOldIndex, in.ElectricityNewIndex)
	b.ElectricityUsage = usage
	b.ElectricityCost = usage * in.ElectricityUnitPrice
	b.MeterRollback = rollback

	switch in.WaterModel {
	case model.WaterModelPerPerson:
		b.WaterCost = int64(in.NumberOfPeople) * in.WaterPricePerPerson
	default:
		usage, rollback := UsageDelta(in.WaterOldIndex, in.WaterNewIndex)
		b.WaterUsage = usage
		b.WaterCost = usage * in.WaterUnitPrice
		b.MeterRollback = b.MeterRollback || rollback
	}

	b.ServiceFeesTotal = FeesTotal(in.Fees)

	if in.IncludeRoomRent {
		b.RoomRent = in.RoomBasePrice
	}

	b.Total = b.RoomRent + b.ElectricityCost + b.WaterCost + b.ServiceFeesTotal
	return b
}

// FeesTotal sums billable fees only. Blank-named or non-positive entries are
// ignored regardless of amount.
func FeesTotal(fees []model.ServiceFee) int64 {
	var total int64
	for _, fee := range fees {
		if fee.Billable() {
			total += fee.Amount
		}
	}
	return total
}

// FromDraft maps a draft to calculator inputs.
func FromDraft(d *model.InvoiceDraft) Inputs {
	return Inputs{
		ElectricityOldIndex:  d.ElectricityOldIndex,
		ElectricityNewIndex:  d.ElectricityNewIndex,
		ElectricityUnitPrice: d.ElectricityUnitPrice,
		WaterModel:           d.WaterModel,
		WaterOldIndex:        d.WaterOldIndex,
		WaterNewIndex:        d.WaterNewIndex,
		WaterUnitPrice:       d.WaterUnitPrice,
		NumberOfPeople:       d.NumberOfPeople,
		WaterPricePerPerson:  d.WaterPricePerPerson,
		IncludeRoomRent:      d.IncludeRoomRent,
		RoomBasePrice:        d.RoomBasePrice,
		Fees:                 d.ServiceFees,
	}
}
