package draft

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
)

// SelectBuilding sets the draft's building and clears the room plus every
// room-derived field. Billing period and due date are user-entered and
// survive the reset.
func (b *business) SelectBuilding(ctx context.Context, id, buildingID string) (*model.InvoiceDraft, error) {
	if buildingID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "building must be provided"}
	}

	var result *model.InvoiceDraft

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		if err := domain.RequireEditing(currentDraft); err != nil {
			return err
		}

		d := convertDBDraftToModel(currentDraft, nil)
		d.BuildingID = buildingID
		resetRoomDerived(d)
		recompute(d)

		txDraftRepo := b.stateMachine.GetTransactionQueries()
		txFeeRepo := b.feeRepo.WithTx(b.stateMachine.GetCurrentTx())

		if err := txFeeRepo.DeleteFeesByDraft(ctx, id); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to clear draft fees"}
		}

		updated, err := txDraftRepo.UpdateDraft(ctx, updateDraftParams(d))
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to update draft"}
		}

		// Supersede any room-detail fetch still in flight for the old room.
		if _, err := txDraftRepo.IncrementSnapshotSeq(ctx, id); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to advance snapshot token"}
		}

		result = convertDBDraftToModel(updated, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// resetRoomDerived clears everything seeded from a room's rate snapshot.
func resetRoomDerived(d *model.InvoiceDraft) {
	d.RoomID = ""
	d.ContractID = ""
	d.ElectricityOldIndex = 0
	d.WaterOldIndex = 0
	d.ElectricityUnitPrice = 0
	d.WaterUnitPrice = 0
	d.WaterPricePerPerson = 0
	d.RoomBasePrice = 0
	d.DepositAmount = 0
	d.ServiceFees = nil
}
