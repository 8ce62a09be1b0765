package catalog

import (
	"context"
	"encoding/json"
	"time"

	"encore.dev/rlog"

	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/snapshots"
)

// System-wide default rates used when property-core is unreachable and no
// cached snapshot exists for the room. The draft stays usable either way.
const (
	DefaultElectricityUnitPrice = 3500
	DefaultWaterUnitPrice       = 20000
	DefaultWaterPricePerPerson  = 100000
)

// GetRoomDetail resolves the room's rate snapshot with a fallback chain:
// live fetch from property-core, then the last cached snapshot, then
// system-wide default rates. It never returns an error; rate resolution must
// not block the draft.
func (b *business) GetRoomDetail(ctx context.Context, roomID string) (*model.RoomRateSnapshot, error) {
	snapshot, err := b.gateway.GetRoomDetail(ctx, roomID)
	if err == nil {
		b.cacheSnapshot(ctx, snapshot)
		return snapshot, nil
	}
	rlog.Warn("room detail fetch failed, falling back", "room_id", roomID, "error", err)

	if cached, cacheErr := b.snapshotRepo.GetSnapshot(ctx, roomID); cacheErr == nil {
		return convertDBSnapshotToModel(cached), nil
	}

	return defaultSnapshot(roomID), nil
}

func (b *business) cacheSnapshot(ctx context.Context, snapshot *model.RoomRateSnapshot) {
	var defaultFees []byte
	if len(snapshot.DefaultFees) > 0 {
		var err error
		defaultFees, err = json.Marshal(snapshot.DefaultFees)
		if err != nil {
			rlog.Error("failed to marshal default fees", "room_id", snapshot.RoomID, "error", err)
		}
	}

	_, err := b.snapshotRepo.UpsertSnapshot(ctx, snapshots.UpsertSnapshotParams{
		RoomID:               snapshot.RoomID,
		ElectricityUnitPrice: snapshot.ElectricityUnitPrice,
		WaterUnitPrice:       snapshot.WaterUnitPrice,
		WaterPricePerPerson:  snapshot.WaterPricePerPerson,
		WaterModel:           string(waterModelOrDefault(snapshot.WaterModel)),
		BasePrice:            snapshot.BasePrice,
		DepositAmount:        snapshot.DepositAmount,
		LastElectricityIndex: snapshot.LastElectricityIndex,
		LastWaterIndex:       snapshot.LastWaterIndex,
		DefaultFees:          defaultFees,
	})
	if err != nil {
		// Cache refresh is best-effort.
		rlog.Error("failed to cache room rate snapshot", "room_id", snapshot.RoomID, "error", err)
	}
}

func convertDBSnapshotToModel(row snapshots.RoomRateSnapshot) *model.RoomRateSnapshot {
	snapshot := &model.RoomRateSnapshot{
		RoomID:               row.RoomID,
		ElectricityUnitPrice: row.ElectricityUnitPrice,
		WaterUnitPrice:       row.WaterUnitPrice,
		WaterPricePerPerson:  row.WaterPricePerPerson,
		WaterModel:           waterModelOrDefault(model.WaterModel(row.WaterModel)),
		BasePrice:            row.BasePrice,
		DepositAmount:        row.DepositAmount,
		LastElectricityIndex: row.LastElectricityIndex,
		LastWaterIndex:       row.LastWaterIndex,
		FetchedAt:            row.FetchedAt.Time,
	}

	if len(row.DefaultFees) > 0 {
		if err := json.Unmarshal(row.DefaultFees, &snapshot.DefaultFees); err != nil {
			rlog.Error("failed to unmarshal cached default fees", "room_id", row.RoomID, "error", err)
		}
	}

	return snapshot
}

func defaultSnapshot(roomID string) *model.RoomRateSnapshot {
	return &model.RoomRateSnapshot{
		RoomID:               roomID,
		ElectricityUnitPrice: DefaultElectricityUnitPrice,
		WaterUnitPrice:       DefaultWaterUnitPrice,
		WaterPricePerPerson:  DefaultWaterPricePerPerson,
		WaterModel:           model.WaterModelMetered,
		FetchedAt:            time.Now(),
	}
}

func waterModelOrDefault(m model.WaterModel) model.WaterModel {
	if m == model.WaterModelPerPerson {
		return model.WaterModelPerPerson
	}
	return model.WaterModelMetered
}
