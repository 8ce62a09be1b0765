package invoicing

import (
	"context"
	"fmt"

	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

type OpenDraftRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`
}

type DraftResponse struct {
	Draft model.InvoiceDraft `json:"draft"`
}

//encore:api public path=/v1/drafts method=POST tag:idempotency
func (s *Service) OpenDraft(ctx context.Context, req *OpenDraftRequest) (*DraftResponse, error) {
	result, err := s.business.OpenDraft(ctx, req.IdempotencyKey)
	if err != nil {
		rlog.Error("failed to open draft", "error", err)
		return nil, err
	}

	// Start the session workflow tracking the draft's lifecycle
	if wfErr := s.startDraftSession(ctx, result); wfErr != nil {
		// The draft is usable without the session; we emit structured context
		rlog.Error("workflow start issue", "draft_id", result.ID, "error", wfErr)
	}

	return &DraftResponse{
		Draft: *result,
	}, nil
}

// startDraftSession starts the Temporal workflow that recomputes totals on
// edit signals and discards the draft after the idle timeout.
func (s *Service) startDraftSession(ctx context.Context, d *model.InvoiceDraft) error {
	workflowID := fmt.Sprintf("draft-%s", d.IdempotencyKey)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.DraftSessionWorkflowParams{
		DraftID:     d.ID,
		OpenedAt:    d.CreatedAt,
		IdleTimeout: workflow.DefaultIdleTimeout,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.DraftSession, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "draft_id", d.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
