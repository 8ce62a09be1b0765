package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/invoicing/business/draft"
)

// ActivityDependencies holds the dependencies needed by activities.
type ActivityDependencies struct {
	DraftBusiness draft.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities.
func SetActivityDependencies(draftBusiness draft.Business) {
	activityDeps = &ActivityDependencies{
		DraftBusiness: draftBusiness,
	}
}

// RecomputeDraftTotalActivity re-derives the draft total after an edit signal.
func RecomputeDraftTotalActivity(ctx context.Context, draftID string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing recompute draft total activity", "draftID", draftID)

	if activityDeps == nil || activityDeps.DraftBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.DraftBusiness.RecomputeTotal(ctx, draftID); err != nil {
		logger.Error("Failed to recompute draft total", "draftID", draftID, "error", err)
		return err
	}

	logger.Info("Successfully recomputed draft total", "draftID", draftID)
	return nil
}

// DiscardDraftActivity discards an abandoned or manually cancelled draft.
func DiscardDraftActivity(ctx context.Context, draftID, reason string) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing discard draft activity", "draftID", draftID, "reason", reason)

	if activityDeps == nil || activityDeps.DraftBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	if err := activityDeps.DraftBusiness.Discard(ctx, draftID, reason); err != nil {
		logger.Error("Failed to discard draft", "draftID", draftID, "error", err)
		return err
	}

	logger.Info("Successfully discarded draft", "draftID", draftID, "reason", reason)
	return nil
}
