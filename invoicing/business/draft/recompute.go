package draft

import (
	"context"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
)

// RecomputeTotal re-derives the draft's total under the row lock. It is a
// no-op once the draft left the editing state, so the session workflow can
// call it without racing a submission.
func (b *business) RecomputeTotal(ctx context.Context, id string) error {
	return b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		if model.DraftStatus(currentDraft.Status) != model.DraftStatusEditing {
			return nil
		}

		var refreshed *model.InvoiceDraft
		return b.recomputeAndReloadTx(ctx, id, &refreshed)
	})
}
