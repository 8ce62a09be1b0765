package catalog

import (
	"context"

	"encore.app/invoicing/gateway/propertycore"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/snapshots"
)

type Business interface {
	ListBuildings(ctx context.Context) ([]model.Building, error)
	ListRoomsForBuilding(ctx context.Context, buildingID string) ([]model.Room, error)
	GetRoomDetail(ctx context.Context, roomID string) (*model.RoomRateSnapshot, error)
}

type business struct {
	gateway      propertycore.Gateway
	snapshotRepo snapshots.Querier
}

func NewCatalogBusiness(gateway propertycore.Gateway, snapshotRepo snapshots.Querier) Business {
	return &business{
		gateway:      gateway,
		snapshotRepo: snapshotRepo,
	}
}
