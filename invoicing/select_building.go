package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type SelectBuildingRequest struct {
	BuildingID string `json:"building_id" validate:"required,max=100"`
}

//encore:api public path=/v1/drafts/:id/building method=POST
func (s *Service) SelectBuilding(ctx context.Context, id string, req *SelectBuildingRequest) (*DraftResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid draft ID"}
	}

	result, err := s.business.SelectBuilding(ctx, id, req.BuildingID)
	if err != nil {
		rlog.Error("failed to select building", "error", err, "id", id, "building_id", req.BuildingID)
		return nil, err
	}

	s.signalDraftChanged(result, "building")

	return &DraftResponse{
		Draft: *result,
	}, nil
}

// Validate implements validation for SelectBuildingRequest
func (r *SelectBuildingRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
