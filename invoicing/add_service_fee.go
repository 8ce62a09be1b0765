package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type AddServiceFeeRequest struct {
	Name        string  `json:"name" validate:"max=255"`
	Amount      int64   `json:"amount" validate:"min=0"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

//encore:api public path=/v1/drafts/:id/fees method=POST
func (s *Service) AddServiceFee(ctx context.Context, id string, req *AddServiceFeeRequest) (*DraftResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid draft ID"}
	}

	result, err := s.business.AddServiceFee(ctx, id, &model.ServiceFee{
		Name:        req.Name,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		rlog.Error("failed to add service fee", "error", err, "id", id)
		return nil, err
	}

	s.signalDraftChanged(result, "service_fee")

	return &DraftResponse{
		Draft: *result,
	}, nil
}

// Validate implements validation for AddServiceFeeRequest. An empty name is
// allowed while editing; unnamed fees are excluded at submission.
func (r *AddServiceFeeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
