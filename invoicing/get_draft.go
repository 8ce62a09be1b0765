package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

//encore:api public path=/v1/drafts/:id method=GET
func (s *Service) GetDraft(ctx context.Context, id string) (*DraftResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid draft ID"}
	}

	result, err := s.business.GetDraft(ctx, id)
	if err != nil {
		rlog.Error("failed to get draft", "error", err, "id", id)
		return nil, err
	}

	return &DraftResponse{
		Draft: *result,
	}, nil
}
