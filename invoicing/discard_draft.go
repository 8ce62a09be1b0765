package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/workflow"
)

type DiscardDraftRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

type DiscardDraftResponse struct {
	Discarded bool `json:"discarded"`
}

//encore:api public path=/v1/drafts/:id/discard method=POST
func (s *Service) DiscardDraft(ctx context.Context, id string, req *DiscardDraftRequest) (*DiscardDraftResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid draft ID"}
	}

	if err := s.business.Discard(ctx, id, req.Reason); err != nil {
		rlog.Error("failed to discard draft", "error", err, "id", id)
		return nil, err
	}

	// End the session workflow. The draft is already discarded, so the
	// workflow's own discard call is a no-op.
	s.signalDiscard(ctx, id, req.Reason)

	return &DiscardDraftResponse{Discarded: true}, nil
}

// Validate implements validation for DiscardDraftRequest
func (r *DiscardDraftRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

func (s *Service) signalDiscard(ctx context.Context, id, reason string) {
	d, err := s.business.GetDraft(ctx, id)
	if err != nil || d.WorkflowID == nil {
		return
	}
	workflowID := *d.WorkflowID

	runAsync("signal-discard-draft", func(ctx context.Context) error {
		signal := workflow.DiscardDraftSignal{Reason: reason, DiscardedBy: "operator"}
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.DiscardDraftSignalName, signal)
	})
}
