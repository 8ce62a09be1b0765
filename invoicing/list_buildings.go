package invoicing

import (
	"context"

	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type ListBuildingsResponse struct {
	Buildings []model.Building `json:"buildings"`
}

//encore:api public path=/v1/buildings method=GET
func (s *Service) ListBuildings(ctx context.Context) (*ListBuildingsResponse, error) {
	buildings, err := s.catalog.ListBuildings(ctx)
	if err != nil {
		rlog.Error("failed to list buildings", "error", err)
		return nil, err
	}

	return &ListBuildingsResponse{Buildings: buildings}, nil
}
