package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

//encore:api public path=/v1/drafts/:id/fees/:feeID method=DELETE
func (s *Service) RemoveServiceFee(ctx context.Context, id string, feeID int) (*DraftResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid draft ID"}
	}
	if feeID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid fee ID"}
	}

	result, err := s.business.RemoveServiceFee(ctx, id, int32(feeID))
	if err != nil {
		rlog.Error("failed to remove service fee", "error", err, "id", id, "fee_id", feeID)
		return nil, err
	}

	s.signalDraftChanged(result, "service_fee")

	return &DraftResponse{
		Draft: *result,
	}, nil
}
