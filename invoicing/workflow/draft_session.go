package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// DefaultIdleTimeout is how long a draft may sit untouched before the
// session discards it.
const DefaultIdleTimeout = 24 * time.Hour

// DraftSessionWorkflowParams contains parameters for starting the draft
// session workflow.
type DraftSessionWorkflowParams struct {
	DraftID     string        `json:"draft_id"`
	OpenedAt    time.Time     `json:"opened_at"`
	IdleTimeout time.Duration `json:"idle_timeout"`
}

// DraftSession tracks one invoice draft from open to submission or discard.
// Every edit signal resets the idle timer; a draft nobody touches for the
// idle timeout is discarded automatically.
func DraftSession(ctx workflow.Context, params DraftSessionWorkflowParams) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting draft session workflow", "draftID", params.DraftID, "openedAt", params.OpenedAt)

	idleTimeout := params.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}

	changedCh := workflow.GetSignalChannel(ctx, DraftChangedSignalName)
	submittedCh := workflow.GetSignalChannel(ctx, SubmitCompletedSignalName)
	discardCh := workflow.GetSignalChannel(ctx, DiscardDraftSignalName)

	sessionEnded := false

	for !sessionEnded {
		// A fresh timer per iteration resets the idle window on every signal.
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, idleTimeout)

		selector := workflow.NewSelector(ctx)

		selector.AddReceive(changedCh, func(c workflow.ReceiveChannel, more bool) {
			var signal DraftChangedSignal
			c.Receive(ctx, &signal)
			logger.Info("Draft changed, recomputing total", "draftID", params.DraftID, "field", signal.Field)

			err := recomputeDraftTotal(ctx, params.DraftID)
			if err != nil {
				logger.Error("Failed to recompute draft total", "draftID", params.DraftID, "error", err)
			}
		})

		selector.AddReceive(submittedCh, func(c workflow.ReceiveChannel, more bool) {
			var signal SubmitCompletedSignal
			c.Receive(ctx, &signal)
			logger.Info("Draft submitted, ending session", "draftID", params.DraftID, "invoiceID", signal.InvoiceID)
			sessionEnded = true
		})

		selector.AddReceive(discardCh, func(c workflow.ReceiveChannel, more bool) {
			var signal DiscardDraftSignal
			c.Receive(ctx, &signal)
			logger.Info("Received manual discard signal", "draftID", params.DraftID, "reason", signal.Reason)

			err := discardDraft(ctx, params.DraftID, signal.Reason)
			if err != nil {
				logger.Error("Failed to discard draft manually", "error", err)
			} else {
				sessionEnded = true
			}
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Idle timeout reached, discarding draft", "draftID", params.DraftID)

			err := discardDraft(ctx, params.DraftID, "session_expired")
			if err != nil {
				logger.Error("Failed to discard idle draft", "error", err)
			}
			sessionEnded = true
		})

		selector.Select(ctx)
		cancelTimer()
	}

	logger.Info("Draft session workflow completed", "draftID", params.DraftID)
	return nil
}

// recomputeDraftTotal executes the RecomputeDraftTotal activity.
func recomputeDraftTotal(ctx workflow.Context, draftID string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, RecomputeDraftTotalActivity, draftID).Get(ctx, nil)
}

// discardDraft executes the DiscardDraft activity.
func discardDraft(ctx workflow.Context, draftID, reason string) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, DiscardDraftActivity, draftID, reason).Get(ctx, nil)
}
