package draft

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
)

// Discard abandons the draft. Discarding an already discarded draft is a
// no-op, so the session workflow's idle timer and a manual discard cannot
// trip over each other.
func (b *business) Discard(ctx context.Context, id, reason string) error {
	discarded := false

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		switch model.DraftStatus(currentDraft.Status) {
		case model.DraftStatusDiscarded:
			return nil
		case model.DraftStatusEditing:
		default:
			return &errs.Error{Code: errs.FailedPrecondition, Message: "only an editing draft can be discarded"}
		}

		if err := b.stateMachine.TransitionToDiscardedTx(ctx, id); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to discard draft"}
		}
		discarded = true
		return nil
	})
	if err != nil {
		return err
	}

	if discarded {
		if pubErr := b.publisher.Publish(ctx, id, model.DraftDiscardedEvent{
			DraftID:     id,
			Reason:      reason,
			DiscardedAt: time.Now(),
		}); pubErr != nil {
			rlog.Error("failed to publish draft discarded event", "draft_id", id, "error", pubErr)
		}
	}

	return nil
}
