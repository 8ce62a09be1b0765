package draft

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/domain/pricing"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
)

// FieldChange is one reducer-style update to a draft. Nil fields are left
// untouched; set fields overwrite. The computed total is always re-derived
// in the same transaction, never patched directly.
type FieldChange struct {
	BillingPeriod       *string           `json:"billing_period,omitempty"`
	DueDate             *time.Time        `json:"due_date,omitempty"`
	ElectricityOldIndex *int64            `json:"electricity_old_index,omitempty"`
	ElectricityNewIndex *int64            `json:"electricity_new_index,omitempty"`
	WaterModel          *model.WaterModel `json:"water_model,omitempty"`
	WaterOldIndex       *int64            `json:"water_old_index,omitempty"`
	WaterNewIndex       *int64            `json:"water_new_index,omitempty"`
	NumberOfPeople      *int32            `json:"number_of_people,omitempty"`
	IncludeRoomRent     *bool             `json:"include_room_rent,omitempty"`
	Notes               *string           `json:"notes,omitempty"`
}

// UpdateFields applies a field change under the draft's row lock and
// recomputes the total before the transaction commits, so every read after
// this call observes a consistent draft.
func (b *business) UpdateFields(ctx context.Context, id string, change FieldChange) (*model.InvoiceDraft, error) {
	var result *model.InvoiceDraft

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		if err := domain.RequireEditing(currentDraft); err != nil {
			return err
		}

		txFeeRepo := b.feeRepo.WithTx(b.stateMachine.GetCurrentTx())
		feeRows, err := txFeeRepo.ListFeesByDraft(ctx, id)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to load draft fees"}
		}

		d := convertDBDraftToModel(currentDraft, feeRows)
		touchedSnapshotFields := applyFieldChange(d, change)
		recompute(d)

		txDraftRepo := b.stateMachine.GetTransactionQueries()
		updated, err := txDraftRepo.UpdateDraft(ctx, updateDraftParams(d))
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update draft"}
		}

		// A manual edit of snapshot-derived fields supersedes any room-detail
		// fetch still in flight.
		if touchedSnapshotFields {
			if _, err := txDraftRepo.IncrementSnapshotSeq(ctx, id); err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to advance snapshot token"}
			}
		}

		result = convertDBDraftToModel(updated, feeRows)
		result.ServiceFees = d.ServiceFees
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// applyFieldChange is the pure reducer: it folds one change into the draft
// and reports whether a snapshot-derived field was touched.
func applyFieldChange(d *model.InvoiceDraft, change FieldChange) bool {
	touchedSnapshotFields := false

	if change.BillingPeriod != nil {
		d.BillingPeriod = *change.BillingPeriod
	}
	if change.DueDate != nil {
		due := *change.DueDate
		d.DueDate = &due
	}
	if change.ElectricityOldIndex != nil {
		d.ElectricityOldIndex = *change.ElectricityOldIndex
		touchedSnapshotFields = true
	}
	if change.ElectricityNewIndex != nil {
		d.ElectricityNewIndex = *change.ElectricityNewIndex
	}
	if change.WaterModel != nil {
		d.WaterModel = *change.WaterModel
	}
	if change.WaterOldIndex != nil {
		d.WaterOldIndex = *change.WaterOldIndex
		touchedSnapshotFields = true
	}
	if change.WaterNewIndex != nil {
		d.WaterNewIndex = *change.WaterNewIndex
	}
	if change.NumberOfPeople != nil {
		d.NumberOfPeople = *change.NumberOfPeople
	}
	if change.IncludeRoomRent != nil {
		d.IncludeRoomRent = *change.IncludeRoomRent
	}
	if change.Notes != nil {
		notes := *change.Notes
		d.Notes = &notes
	}

	return touchedSnapshotFields
}

// recompute re-derives the total and rollback flag from the draft's fields.
func recompute(d *model.InvoiceDraft) {
	breakdown := pricing.Compute(pricing.FromDraft(d))
	d.ComputedTotal = breakdown.Total
	d.MeterRollback = breakdown.MeterRollback
}

func updateDraftParams(d *model.InvoiceDraft) drafts.UpdateDraftParams {
	arg := drafts.UpdateDraftParams{
		ID:                   d.ID,
		BuildingID:           pgtype.Text{String: d.BuildingID, Valid: d.BuildingID != ""},
		RoomID:               pgtype.Text{String: d.RoomID, Valid: d.RoomID != ""},
		ContractID:           pgtype.Text{String: d.ContractID, Valid: d.ContractID != ""},
		BillingPeriod:        pgtype.Text{String: d.BillingPeriod, Valid: d.BillingPeriod != ""},
		ElectricityOldIndex:  d.ElectricityOldIndex,
		ElectricityNewIndex:  d.ElectricityNewIndex,
		WaterModel:           string(d.WaterModel),
		WaterOldIndex:        d.WaterOldIndex,
		WaterNewIndex:        d.WaterNewIndex,
		NumberOfPeople:       d.NumberOfPeople,
		IncludeRoomRent:      d.IncludeRoomRent,
		ElectricityUnitPrice: d.ElectricityUnitPrice,
		WaterUnitPrice:       d.WaterUnitPrice,
		WaterPricePerPerson:  d.WaterPricePerPerson,
		RoomBasePrice:        d.RoomBasePrice,
		DepositAmount:        d.DepositAmount,
		MeterRollback:        d.MeterRollback,
		ComputedTotal:        d.ComputedTotal,
	}
	if d.DueDate != nil {
		arg.DueDate = pgtype.Timestamptz{Time: *d.DueDate, Valid: true}
	}
	if d.Notes != nil {
		arg.Notes = pgtype.Text{String: *d.Notes, Valid: true}
	}
	return arg
}
