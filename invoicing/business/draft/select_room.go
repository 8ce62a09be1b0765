package draft

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/domain/pricing"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
	"encore.app/invoicing/repository/fees"
)

// SelectRoom sets the draft's room and resets snapshot-derived fields. It
// returns the new snapshot sequence; the caller fetches the room's rate
// snapshot asynchronously and offers it back via ApplyRateSnapshot with that
// token.
func (b *business) SelectRoom(ctx context.Context, id, roomID string) (*model.InvoiceDraft, int64, error) {
	if roomID == "" {
		return nil, 0, &errs.Error{Code: errs.InvalidArgument, Message: "room must be provided"}
	}

	var result *model.InvoiceDraft
	var snapshotSeq int64

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		if err := domain.RequireEditing(currentDraft); err != nil {
			return err
		}
		if !currentDraft.BuildingID.Valid {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "building must be selected before choosing a room"}
		}

		d := convertDBDraftToModel(currentDraft, nil)
		resetRoomDerived(d)
		d.RoomID = roomID
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

		seq, err := txDraftRepo.IncrementSnapshotSeq(ctx, id)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to advance snapshot token"}
		}

		snapshotSeq = seq
		result = convertDBDraftToModel(updated, nil)
		result.SnapshotSeq = seq
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return result, snapshotSeq, nil
}

// ApplyRateSnapshot folds a fetched rate snapshot into the draft, but only
// while snapshotSeq still matches the draft's latest issued token. A stale
// result is dropped silently: the operator's later edits or re-selection win.
func (b *business) ApplyRateSnapshot(ctx context.Context, id string, snapshotSeq int64, snapshot *model.RoomRateSnapshot) error {
	return b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		if model.DraftStatus(currentDraft.Status) != model.DraftStatusEditing {
			return nil
		}
		if currentDraft.SnapshotSeq != snapshotSeq {
			rlog.Debug("dropping stale rate snapshot", "draft_id", id, "token", snapshotSeq, "current", currentDraft.SnapshotSeq)
			return nil
		}

		txDraftRepo := b.stateMachine.GetTransactionQueries()
		txFeeRepo := b.feeRepo.WithTx(b.stateMachine.GetCurrentTx())

		updated, err := txDraftRepo.ApplyRateSnapshot(ctx, drafts.ApplyRateSnapshotParams{
			ID:                   id,
			SnapshotSeq:          snapshotSeq,
			ElectricityUnitPrice: snapshot.ElectricityUnitPrice,
			WaterUnitPrice:       snapshot.WaterUnitPrice,
			WaterPricePerPerson:  snapshot.WaterPricePerPerson,
			WaterModel:           string(snapshot.WaterModel),
			RoomBasePrice:        snapshot.BasePrice,
			DepositAmount:        snapshot.DepositAmount,
			ElectricityOldIndex:  snapshot.LastElectricityIndex,
			WaterOldIndex:        snapshot.LastWaterIndex,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Token advanced between the lock and the conditional write.
				return nil
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to apply rate snapshot"}
		}

		feeRows, err := seedDefaultFees(ctx, txFeeRepo, id, snapshot.DefaultFees)
		if err != nil {
			return err
		}

		d := convertDBDraftToModel(updated, feeRows)
		breakdown := pricing.Compute(pricing.FromDraft(d))
		return b.stateMachine.UpdateDraftTotalTx(ctx, id, breakdown.Total, breakdown.MeterRollback)
	})
}

func seedDefaultFees(ctx context.Context, txFeeRepo *fees.Queries, draftID string, defaults []model.DefaultFee) ([]fees.DraftFee, error) {
	rows := make([]fees.DraftFee, 0, len(defaults))
	for i, def := range defaults {
		arg := fees.CreateFeeParams{
			DraftID:  draftID,
			Name:     def.Name,
			Amount:   def.Amount,
			Position: int32(i),
		}
		if def.Description != nil {
			arg.Description = pgtype.Text{String: *def.Description, Valid: true}
		}
		row, err := txFeeRepo.CreateFee(ctx, arg)
		if err != nil {
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to seed default fees"}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
