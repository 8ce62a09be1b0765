package propertycore

import (
	"context"
	"net/http"

	"encore.app/invoicing/model"
)

type buildingsResponse struct {
	Buildings []model.Building `json:"buildings"`
}

type roomsResponse struct {
	Rooms []model.Room `json:"rooms"`
}

type roomDetailResponse struct {
	Room model.RoomRateSnapshot `json:"room"`
}

type contractResponse struct {
	Contract model.Contract `json:"contract"`
}

func (c *Client) ListBuildings(ctx context.Context) ([]model.Building, error) {
	var out buildingsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/v1/buildings")
	if err != nil {
		return nil, transportError(err)
	}
	if resp.IsError() {
		return nil, parseBackendError(resp.StatusCode(), resp.Body())
	}
	return out.Buildings, nil
}

func (c *Client) ListRooms(ctx context.Context, buildingID string) ([]model.Room, error) {
	var out roomsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("buildingID", buildingID).
		Get("/v1/buildings/{buildingID}/rooms")
	if err != nil {
		return nil, transportError(err)
	}
	if resp.IsError() {
		return nil, parseBackendError(resp.StatusCode(), resp.Body())
	}
	// An empty room list is a valid state, not an error.
	return out.Rooms, nil
}

func (c *Client) GetRoomDetail(ctx context.Context, roomID string) (*model.RoomRateSnapshot, error) {
	var out roomDetailResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("roomID", roomID).
		Get("/v1/rooms/{roomID}")
	if err != nil {
		return nil, transportError(err)
	}
	if resp.IsError() {
		return nil, parseBackendError(resp.StatusCode(), resp.Body())
	}
	snapshot := out.Room
	snapshot.RoomID = roomID
	return &snapshot, nil
}

// GetActiveContract returns the room's active contract, or nil when the room
// has none. A missing contract is a refusal condition for submission, not a
// gateway error.
func (c *Client) GetActiveContract(ctx context.Context, roomID string) (*model.Contract, error) {
	var out contractResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetPathParam("roomID", roomID).
		Get("/v1/rooms/{roomID}/contract")
	if err != nil {
		return nil, transportError(err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		return nil, parseBackendError(resp.StatusCode(), resp.Body())
	}
	if !out.Contract.Active() {
		return nil, nil
	}
	return &out.Contract, nil
}
