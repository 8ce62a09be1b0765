package invoicing

import (
	"context"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/business/draft"
	"encore.app/invoicing/model"
	"encore.app/invoicing/workflow"
)

type UpdateDraftRequest struct {
	BillingPeriod       *string    `json:"billing_period" validate:"omitempty,datetime=2006-01"`
	DueDate             *time.Time `json:"due_date"`
	ElectricityOldIndex *int64     `json:"electricity_old_index" validate:"omitempty,min=0"`
	ElectricityNewIndex *int64     `json:"electricity_new_index" validate:"omitempty,min=0"`
	WaterModel          *string    `json:"water_model" validate:"omitempty,oneof=metered per_person"`
	WaterOldIndex       *int64     `json:"water_old_index" validate:"omitempty,min=0"`
	WaterNewIndex       *int64     `json:"water_new_index" validate:"omitempty,min=0"`
	NumberOfPeople      *int32     `json:"number_of_people" validate:"omitempty,min=0,max=50"`
	IncludeRoomRent     *bool      `json:"include_room_rent"`
	Notes               *string    `json:"notes" validate:"omitempty,max=2000"`
}

//encore:api public path=/v1/drafts/:id method=PATCH
func (s *Service) UpdateDraft(ctx context.Context, id string, req *UpdateDraftRequest) (*DraftResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid draft ID"}
	}

	change := draft.FieldChange{
		BillingPeriod:       req.BillingPeriod,
		DueDate:             req.DueDate,
		ElectricityOldIndex: req.ElectricityOldIndex,
		ElectricityNewIndex: req.ElectricityNewIndex,
		WaterOldIndex:       req.WaterOldIndex,
		WaterNewIndex:       req.WaterNewIndex,
		NumberOfPeople:      req.NumberOfPeople,
		IncludeRoomRent:     req.IncludeRoomRent,
		Notes:               req.Notes,
	}
	if req.WaterModel != nil {
		wm := model.WaterModel(*req.WaterModel)
		change.WaterModel = &wm
	}

	result, err := s.business.UpdateFields(ctx, id, change)
	if err != nil {
		rlog.Error("failed to update draft", "error", err, "id", id)
		return nil, err
	}

	s.signalDraftChanged(result, "field_update")

	return &DraftResponse{
		Draft: *result,
	}, nil
}

// Validate implements validation for UpdateDraftRequest
func (r *UpdateDraftRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// signalDraftChanged pokes the session workflow so the idle timer resets.
// Best-effort: the synchronous recompute already happened in the business
// layer.
func (s *Service) signalDraftChanged(d *model.InvoiceDraft, field string) {
	if d.WorkflowID == nil {
		return
	}
	workflowID := *d.WorkflowID

	runAsync("signal-draft-changed", func(ctx context.Context) error {
		signal := workflow.DraftChangedSignal{Field: field}
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.DraftChangedSignalName, signal)
	})
}
