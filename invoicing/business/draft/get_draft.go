package draft

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
)

func (b *business) GetDraft(ctx context.Context, id string) (*model.InvoiceDraft, error) {
	dbDraft, err := b.draftRepo.GetDraft(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "draft not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get draft"}
	}

	feeRows, err := b.feeRepo.ListFeesByDraft(ctx, id)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get draft fees"}
	}

	return convertDBDraftToModel(dbDraft, feeRows), nil
}

func (b *business) ListDrafts(ctx context.Context, limit, offset int32) ([]*model.InvoiceDraft, int64, error) {
	dbDrafts, err := b.draftRepo.ListDrafts(ctx, drafts.ListDraftsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list drafts"}
	}

	totalCount, err := b.draftRepo.CountDrafts(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count drafts"}
	}

	result := make([]*model.InvoiceDraft, 0, len(dbDrafts))
	for _, dbDraft := range dbDrafts {
		feeRows, err := b.feeRepo.ListFeesByDraft(ctx, dbDraft.ID)
		if err != nil {
			return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to get draft fees"}
		}
		result = append(result, convertDBDraftToModel(dbDraft, feeRows))
	}

	return result, totalCount, nil
}
