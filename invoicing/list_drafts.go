package invoicing

import (
	"context"

	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type ListDraftsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListDraftsResponse struct {
	Drafts     []model.InvoiceDraft `json:"drafts"`
	TotalCount int64                `json:"total_count"`
	Limit      int                  `json:"limit"`
	Offset     int                  `json:"offset"`
}

//encore:api public path=/v1/drafts method=GET
func (s *Service) ListDrafts(ctx context.Context, req *ListDraftsRequest) (*ListDraftsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	drafts, totalCount, err := s.business.ListDrafts(ctx, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list drafts", "error", err)
		return nil, err
	}

	response := &ListDraftsResponse{
		Drafts:     make([]model.InvoiceDraft, len(drafts)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	for i, d := range drafts {
		response.Drafts[i] = *d
	}

	return response, nil
}
