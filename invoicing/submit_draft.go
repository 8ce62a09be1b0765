package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/gateway/propertycore"
	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

type SubmitDraftResponse struct {
	Invoice propertycore.Invoice `json:"invoice"`
	Draft   model.InvoiceDraft   `json:"draft"`
}

//encore:api public path=/v1/drafts/:id/submit method=POST tag:idempotency
func (s *Service) SubmitDraft(ctx context.Context, id string) (*SubmitDraftResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid draft ID"}
	}

	invoice, submitted, err := s.business.Submit(ctx, id)
	if err != nil {
		rlog.Error("failed to submit draft", "error", err, "id", id)
		return nil, err
	}

	// End the session workflow; the draft no longer needs idle tracking.
	s.signalSubmitCompleted(submitted, invoice.ID)

	return &SubmitDraftResponse{
		Invoice: *invoice,
		Draft:   *submitted,
	}, nil
}

func (s *Service) signalSubmitCompleted(d *model.InvoiceDraft, invoiceID string) {
	if d.WorkflowID == nil {
		return
	}
	workflowID := *d.WorkflowID

	runAsync("signal-submit-completed", func(ctx context.Context) error {
		signal := workflow.SubmitCompletedSignal{InvoiceID: invoiceID}
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.SubmitCompletedSignalName, signal)
	})
}
