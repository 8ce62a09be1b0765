package draft

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
	"encore.app/invoicing/repository/fees"
)

// AddServiceFee appends an ad hoc charge to the draft and recomputes the
// total in the same transaction.
func (b *business) AddServiceFee(ctx context.Context, id string, fee *model.ServiceFee) (*model.InvoiceDraft, error) {
	if fee.Amount < 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "fee amount must not be negative"}
	}

	var result *model.InvoiceDraft

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		if err := domain.RequireEditing(currentDraft); err != nil {
			return err
		}

		txFeeRepo := b.feeRepo.WithTx(b.stateMachine.GetCurrentTx())

		existing, err := txFeeRepo.ListFeesByDraft(ctx, id)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to load draft fees"}
		}

		arg := fees.CreateFeeParams{
			DraftID:  id,
			Name:     fee.Name,
			Amount:   fee.Amount,
			Position: int32(len(existing)),
		}
		if fee.Description != nil {
			arg.Description = pgtype.Text{String: *fee.Description, Valid: true}
		}

		if _, err := txFeeRepo.CreateFee(ctx, arg); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to add service fee"}
		}

		return b.recomputeAndReloadTx(ctx, id, &result)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RemoveServiceFee deletes one charge from the draft and recomputes the
// total in the same transaction.
func (b *business) RemoveServiceFee(ctx context.Context, id string, feeID int32) (*model.InvoiceDraft, error) {
	var result *model.InvoiceDraft

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		if err := domain.RequireEditing(currentDraft); err != nil {
			return err
		}

		txFeeRepo := b.feeRepo.WithTx(b.stateMachine.GetCurrentTx())

		deleted, err := txFeeRepo.DeleteFee(ctx, fees.DeleteFeeParams{ID: feeID, DraftID: id})
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to remove service fee"}
		}
		if deleted == 0 {
			return &errs.Error{Code: errs.NotFound, Message: "service fee not found"}
		}

		return b.recomputeAndReloadTx(ctx, id, &result)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// recomputeAndReloadTx re-derives the total from the transaction's view of
// the draft and leaves the refreshed model in *out.
func (b *business) recomputeAndReloadTx(ctx context.Context, id string, out **model.InvoiceDraft) error {
	txDraftRepo := b.stateMachine.GetTransactionQueries()
	txFeeRepo := b.feeRepo.WithTx(b.stateMachine.GetCurrentTx())

	feeRows, err := txFeeRepo.ListFeesByDraft(ctx, id)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to load draft fees"}
	}

	current, err := txDraftRepo.GetDraft(ctx, id)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to reload draft"}
	}

	d := convertDBDraftToModel(current, feeRows)
	recompute(d)

	updated, err := txDraftRepo.UpdateDraftTotal(ctx, drafts.UpdateDraftTotalParams{
		ID:            id,
		ComputedTotal: d.ComputedTotal,
		MeterRollback: d.MeterRollback,
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to update draft total"}
	}

	*out = convertDBDraftToModel(updated, feeRows)
	return nil
}
