package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/gateway/propertycore"
	"encore.app/invoicing/mocks/gateway/propertycore_gateway"
	"encore.app/invoicing/mocks/repository/snapshot_repo"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/snapshots"
)

func TestGetRoomDetailLiveFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := propertycore_gateway.NewMockGateway(ctrl)
	mockSnapshots := snapshot_repo.NewMockQuerier(ctrl)
	business := &business{gateway: mockGateway, snapshotRepo: mockSnapshots}

	live := &model.RoomRateSnapshot{
		RoomID:               "room-1",
		ElectricityUnitPrice: 4000,
		WaterUnitPrice:       25000,
		WaterModel:           model.WaterModelMetered,
		BasePrice:            3000000,
		LastElectricityIndex: 120,
		DefaultFees: []model.DefaultFee{
			{Name: "Internet", Amount: 100000},
		},
	}

	mockGateway.EXPECT().GetRoomDetail(gomock.Any(), "room-1").Return(live, nil)
	mockSnapshots.EXPECT().
		UpsertSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg snapshots.UpsertSnapshotParams) (snapshots.RoomRateSnapshot, error) {
			assert.Equal(t, "room-1", arg.RoomID)
			assert.Equal(t, int64(4000), arg.ElectricityUnitPrice)
			assert.NotEmpty(t, arg.DefaultFees)
			return snapshots.RoomRateSnapshot{RoomID: arg.RoomID}, nil
		})

	result, err := business.GetRoomDetail(context.Background(), "room-1")

	assert.NoError(t, err)
	assert.Equal(t, live, result)
}

func TestGetRoomDetailFallsBackToCachedSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := propertycore_gateway.NewMockGateway(ctrl)
	mockSnapshots := snapshot_repo.NewMockQuerier(ctrl)
	business := &business{gateway: mockGateway, snapshotRepo: mockSnapshots}

	mockGateway.EXPECT().
		GetRoomDetail(gomock.Any(), "room-1").
		Return(nil, &propertycore.BackendError{Kind: propertycore.KindTransport, Message: "unreachable"})
	mockSnapshots.EXPECT().
		GetSnapshot(gomock.Any(), "room-1").
		Return(snapshots.RoomRateSnapshot{
			RoomID:               "room-1",
			ElectricityUnitPrice: 3800,
			WaterUnitPrice:       22000,
			WaterModel:           string(model.WaterModelPerPerson),
			WaterPricePerPerson:  90000,
			BasePrice:            2500000,
			DefaultFees:          []byte(`[{"name":"Trash","amount":30000}]`),
		}, nil)

	result, err := business.GetRoomDetail(context.Background(), "room-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3800), result.ElectricityUnitPrice)
	assert.Equal(t, model.WaterModelPerPerson, result.WaterModel)
	assert.Len(t, result.DefaultFees, 1)
	assert.Equal(t, "Trash", result.DefaultFees[0].Name)
}

func TestGetRoomDetailFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := propertycore_gateway.NewMockGateway(ctrl)
	mockSnapshots := snapshot_repo.NewMockQuerier(ctrl)
	business := &business{gateway: mockGateway, snapshotRepo: mockSnapshots}

	mockGateway.EXPECT().
		GetRoomDetail(gomock.Any(), "room-9").
		Return(nil, &propertycore.BackendError{Kind: propertycore.KindTransport, Message: "unreachable"})
	mockSnapshots.EXPECT().
		GetSnapshot(gomock.Any(), "room-9").
		Return(snapshots.RoomRateSnapshot{}, assert.AnError)

	result, err := business.GetRoomDetail(context.Background(), "room-9")

	assert.NoError(t, err)
	assert.Equal(t, "room-9", result.RoomID)
	assert.Equal(t, int64(DefaultElectricityUnitPrice), result.ElectricityUnitPrice)
	assert.Equal(t, int64(DefaultWaterUnitPrice), result.WaterUnitPrice)
	assert.Equal(t, int64(DefaultWaterPricePerPerson), result.WaterPricePerPerson)
	assert.Equal(t, model.WaterModelMetered, result.WaterModel)
	assert.Empty(t, result.DefaultFees)
	assert.WithinDuration(t, time.Now(), result.FetchedAt, time.Minute)
}

func TestWaterModelOrDefault(t *testing.T) {
	assert.Equal(t, model.WaterModelMetered, waterModelOrDefault(""))
	assert.Equal(t, model.WaterModelMetered, waterModelOrDefault("flat_rate"))
	assert.Equal(t, model.WaterModelPerPerson, waterModelOrDefault(model.WaterModelPerPerson))
}
