package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
)

// DraftStateMachine owns draft status transitions and their transaction
// boundaries. Every mutation of an in-progress draft runs under a row lock so
// concurrent edits, late snapshot fetches and the session workflow's timer
// cannot interleave half-applied states.
type DraftStateMachine struct {
	db        *pgxpool.Pool
	draftRepo *drafts.Queries
	txQueries *drafts.Queries // transaction-aware queries, set during transitions
	currentTx pgx.Tx
}

func NewDraftStateMachine(db *pgxpool.Pool, draftRepo *drafts.Queries) *DraftStateMachine {
	return &DraftStateMachine{
		db:        db,
		draftRepo: draftRepo,
	}
}

// ExecuteWithLock runs businessLogic against the draft row locked with
// SELECT FOR UPDATE, inside a transaction the state machine owns.
func (sm *DraftStateMachine) ExecuteWithLock(ctx context.Context, id string, businessLogic func(drafts.Draft) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	sm.currentTx = tx
	sm.txQueries = sm.draftRepo.WithTx(tx)

	currentDraft, err := sm.txQueries.GetDraftForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "draft not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock draft"}
	}

	if err := businessLogic(currentDraft); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit draft transition"}
	}

	return nil
}

// RequireEditing rejects any mutation of a draft that left the editing state.
func RequireEditing(d drafts.Draft) error {
	switch model.DraftStatus(d.Status) {
	case model.DraftStatusEditing:
		return nil
	case model.DraftStatusSubmitting:
		return &errs.Error{Code: errs.FailedPrecondition, Message: "draft is being submitted, cannot edit"}
	case model.DraftStatusSubmitted:
		return &errs.Error{Code: errs.FailedPrecondition, Message: "draft was already submitted"}
	case model.DraftStatusDiscarded:
		return &errs.Error{Code: errs.FailedPrecondition, Message: "draft was discarded"}
	default:
		return &errs.Error{Code: errs.FailedPrecondition, Message: "draft is not editable"}
	}
}

// Helper methods for use within ExecuteWithLock callbacks. They use the
// current transaction context (sm.txQueries).

// TransitionToSubmittingTx marks the draft as submitting. Only an editing
// draft may start a submission.
func (sm *DraftStateMachine) TransitionToSubmittingTx(ctx context.Context, id string) error {
	_, err := sm.txQueries.UpdateDraftStatus(ctx, drafts.UpdateDraftStatusParams{
		ID:     id,
		Status: string(model.DraftStatusSubmitting),
	})
	return err
}

// TransitionToSubmittedTx finalizes the draft after the backend accepted the
// invoice, recording the contract the invoice was issued against.
func (sm *DraftStateMachine) TransitionToSubmittedTx(ctx context.Context, id, contractID string) error {
	_, err := sm.txQueries.UpdateDraftSubmission(ctx, drafts.UpdateDraftSubmissionParams{
		ID:         id,
		Status:     string(model.DraftStatusSubmitted),
		ContractID: pgtype.Text{String: contractID, Valid: contractID != ""},
	})
	return err
}

// TransitionToEditingTx restores an editing state after a rejected
// submission, preserving the draft for correction.
func (sm *DraftStateMachine) TransitionToEditingTx(ctx context.Context, id string) error {
	_, err := sm.txQueries.UpdateDraftStatus(ctx, drafts.UpdateDraftStatusParams{
		ID:     id,
		Status: string(model.DraftStatusEditing),
	})
	return err
}

// TransitionToDiscardedTx discards the draft.
func (sm *DraftStateMachine) TransitionToDiscardedTx(ctx context.Context, id string) error {
	_, err := sm.txQueries.UpdateDraftStatus(ctx, drafts.UpdateDraftStatusParams{
		ID:     id,
		Status: string(model.DraftStatusDiscarded),
	})
	return err
}

// UpdateDraftTotalTx rewrites the derived total within the transaction.
func (sm *DraftStateMachine) UpdateDraftTotalTx(ctx context.Context, id string, total int64, meterRollback bool) error {
	_, err := sm.txQueries.UpdateDraftTotal(ctx, drafts.UpdateDraftTotalParams{
		ID:            id,
		ComputedTotal: total,
		MeterRollback: meterRollback,
	})
	return err
}

// GetTransactionQueries returns the current transaction-aware draft queries.
func (sm *DraftStateMachine) GetTransactionQueries() *drafts.Queries {
	return sm.txQueries
}

// GetCurrentTx returns the current transaction for use with other repositories.
func (sm *DraftStateMachine) GetCurrentTx() pgx.Tx {
	return sm.currentTx
}
