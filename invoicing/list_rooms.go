package invoicing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/invoicing/model"
)

type ListRoomsResponse struct {
	Rooms []model.Room `json:"rooms"`
}

//encore:api public path=/v1/buildings/:id/rooms method=GET
func (s *Service) ListRooms(ctx context.Context, id string) (*ListRoomsResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid building ID"}
	}

	rooms, err := s.catalog.ListRoomsForBuilding(ctx, id)
	if err != nil {
		rlog.Error("failed to list rooms", "error", err, "building_id", id)
		return nil, err
	}

	return &ListRoomsResponse{Rooms: rooms}, nil
}
