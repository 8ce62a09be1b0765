package draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
)

// OpenDraft creates an empty draft for a new invoice form session.
func (b *business) OpenDraft(ctx context.Context, idempotencyKey string) (*model.InvoiceDraft, error) {
	workflowID := fmt.Sprintf("draft-%s", idempotencyKey)

	dbDraft, err := b.draftRepo.CreateDraft(ctx, drafts.CreateDraftParams{
		ID:             uuid.NewString(),
		Status:         string(model.DraftStatusEditing),
		WaterModel:     string(model.WaterModelMetered),
		IdempotencyKey: idempotencyKey,
		WorkflowID:     pgtype.Text{String: workflowID, Valid: true},
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return nil, &errs.Error{Code: errs.AlreadyExists, Message: "draft is duplicated"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to open draft"}
	}

	return convertDBDraftToModel(dbDraft, nil), nil
}
