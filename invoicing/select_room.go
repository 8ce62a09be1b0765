package invoicing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type SelectRoomRequest struct {
	RoomID string `json:"room_id" validate:"required,max=100"`
}

//encore:api public path=/v1/drafts/:id/room method=POST
func (s *Service) SelectRoom(ctx context.Context, id string, req *SelectRoomRequest) (*DraftResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid draft ID"}
	}

	result, snapshotSeq, err := s.business.SelectRoom(ctx, id, req.RoomID)
	if err != nil {
		rlog.Error("failed to select room", "error", err, "id", id, "room_id", req.RoomID)
		return nil, err
	}

	// Fetch the room's rates in the background; the response returns
	// immediately with the reset draft. The token makes a late result for a
	// superseded selection a no-op.
	s.fetchRoomRates(id, req.RoomID, snapshotSeq)

	s.signalDraftChanged(result, "room")

	return &DraftResponse{
		Draft: *result,
	}, nil
}

// Validate implements validation for SelectRoomRequest
func (r *SelectRoomRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// fetchRoomRates resolves the room's rate snapshot asynchronously and offers
// it back to the draft under the snapshot token issued at selection time.
func (s *Service) fetchRoomRates(draftID, roomID string, snapshotSeq int64) {
	runAsync("fetch-room-rates", func(ctx context.Context) error {
		snapshot, err := s.catalog.GetRoomDetail(ctx, roomID)
		if err != nil {
			return fmt.Errorf("get room detail %s: %w", roomID, err)
		}
		return s.business.ApplyRateSnapshot(ctx, draftID, snapshotSeq, snapshot)
	})
}
