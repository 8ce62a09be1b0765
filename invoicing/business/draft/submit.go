package draft

import (
	"context"
	"errors"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/gateway/propertycore"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
)

// Submit pushes the draft to property-core as a real invoice.
//
// The draft is moved to submitting before any network call so no edit can
// interleave with the submission, and restored to editing whenever the
// backend rejects it. Property-core remains the source of truth: the
// computed total travels only as a preview.
func (b *business) Submit(ctx context.Context, id string) (*propertycore.Invoice, *model.InvoiceDraft, error) {
	var submitted *model.InvoiceDraft

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
		if err := validateForSubmit(d); err != nil {
			return err
		}

		if err := b.stateMachine.TransitionToSubmittingTx(ctx, id); err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to start submission"}
		}

		submitted = d
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	contract, err := b.gateway.GetActiveContract(ctx, submitted.RoomID)
	if err != nil {
		b.restoreEditing(ctx, id)
		return nil, nil, translateBackendError(err, "failed to verify the room's contract")
	}
	if contract == nil {
		b.restoreEditing(ctx, id)
		return nil, nil, &errs.Error{Code: errs.FailedPrecondition, Message: "room has no active contract"}
	}

	invoice, err := b.gateway.CreateInvoice(ctx, buildInvoiceRequest(submitted, contract.ID))
	if err != nil {
		b.restoreEditing(ctx, id)
		return nil, nil, translateBackendError(err, "failed to submit invoice")
	}

	err = b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		return b.stateMachine.TransitionToSubmittedTx(ctx, id, contract.ID)
	})
	if err != nil {
		// The invoice exists on the backend; the draft state is repaired on
		// the next read rather than by retrying the submission.
		rlog.Error("invoice created but draft finalization failed", "draft_id", id, "invoice_id", invoice.ID, "error", err)
		return nil, nil, &errs.Error{Code: errs.Internal, Message: "invoice was created but the draft could not be finalized"}
	}

	submitted.Status = model.DraftStatusSubmitted
	submitted.ContractID = contract.ID

	if pubErr := b.publisher.Publish(ctx, id, model.InvoiceSubmittedEvent{
		DraftID:       id,
		InvoiceID:     invoice.ID,
		ContractID:    contract.ID,
		RoomID:        submitted.RoomID,
		BillingMonth:  submitted.BillingPeriod,
		ComputedTotal: submitted.ComputedTotal,
		SubmittedAt:   time.Now(),
	}); pubErr != nil {
		rlog.Error("failed to publish invoice submitted event", "draft_id", id, "error", pubErr)
	}

	return invoice, submitted, nil
}

// validateForSubmit collects every violation so the operator sees the full
// list at once instead of fixing fields one round trip at a time. Meter
// rollbacks are not violations: usage is clamped to zero at computation time
// and surfaced through the MeterRollback warning flag.
func validateForSubmit(d *model.InvoiceDraft) error {
	var problems []string

	if d.BuildingID == "" {
		problems = append(problems, "building must be selected")
	}
	if d.RoomID == "" {
		problems = append(problems, "room must be selected")
	}
	if d.BillingPeriod == "" {
		problems = append(problems, "billing period must be set")
	}
	if d.DueDate == nil {
		problems = append(problems, "due date must be set")
	}

	if len(problems) > 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: strings.Join(problems, "\n")}
	}
	return nil
}

// buildInvoiceRequest maps the draft to property-core's create-invoice shape.
// Fees without a name never reach the backend, and water indexes are sent
// only under the metered model.
func buildInvoiceRequest(d *model.InvoiceDraft, contractID string) *propertycore.CreateInvoiceRequest {
	req := &propertycore.CreateInvoiceRequest{
		ContractID:           contractID,
		BillingMonth:         d.BillingPeriod + "-01",
		ElectricityOldIndex:  d.ElectricityOldIndex,
		ElectricityNewIndex:  d.ElectricityNewIndex,
		NumberOfPeople:       d.NumberOfPeople,
		ServiceFees:          []propertycore.ServiceFeePayload{},
		ComputedTotalPreview: d.ComputedTotal,
		Notes:                d.Notes,
	}
	if d.DueDate != nil {
		req.DueDate = d.DueDate.Format("2006-01-02")
	}
	if d.WaterModel == model.WaterModelMetered {
		waterOld, waterNew := d.WaterOldIndex, d.WaterNewIndex
		req.WaterOldIndex = &waterOld
		req.WaterNewIndex = &waterNew
	}
	for _, fee := range d.ServiceFees {
		if strings.TrimSpace(fee.Name) == "" {
			continue
		}
		req.ServiceFees = append(req.ServiceFees, propertycore.ServiceFeePayload{
			Name:        fee.Name,
			Amount:      fee.Amount,
			Description: fee.Description,
		})
	}
	return req
}

// restoreEditing reopens the draft for correction after a failed submission.
func (b *business) restoreEditing(ctx context.Context, id string) {
	err := b.stateMachine.ExecuteWithLock(ctx, id, func(currentDraft drafts.Draft) error {
		if model.DraftStatus(currentDraft.Status) != model.DraftStatusSubmitting {
			return nil
		}
		return b.stateMachine.TransitionToEditingTx(ctx, id)
	})
	if err != nil {
		rlog.Error("failed to restore draft to editing", "draft_id", id, "error", err)
	}
}

// translateBackendError maps a property-core failure to the API error the
// operator should see.
func translateBackendError(err error, fallback string) error {
	var backendErr *propertycore.BackendError
	if !errors.As(err, &backendErr) {
		return &errs.Error{Code: errs.Unavailable, Message: fallback}
	}

	switch backendErr.Kind {
	case propertycore.KindValidation:
		return &errs.Error{Code: errs.InvalidArgument, Message: backendErr.UserMessage()}
	case propertycore.KindState:
		return &errs.Error{Code: errs.FailedPrecondition, Message: backendErr.UserMessage()}
	case propertycore.KindTransport:
		return &errs.Error{Code: errs.Unavailable, Message: "property-core is unreachable, the draft was kept"}
	default:
		return &errs.Error{Code: errs.Unavailable, Message: backendErr.UserMessage()}
	}
}
