package catalog

import (
	"context"
	"errors"

	"encore.dev/beta/errs"

	"encore.app/invoicing/gateway/propertycore"
	"encore.app/invoicing/model"
)

// ListBuildings returns all buildings the operator may bill against.
// Failures are reported, never retried; the caller shows an empty list and a
// non-blocking notice.
func (b *business) ListBuildings(ctx context.Context) ([]model.Building, error) {
	buildings, err := b.gateway.ListBuildings(ctx)
	if err != nil {
		return nil, translateCatalogError(err, "failed to load buildings")
	}
	return buildings, nil
}

// ListRoomsForBuilding returns the building's rooms. An empty result is a
// valid state, not an error.
func (b *business) ListRoomsForBuilding(ctx context.Context, buildingID string) ([]model.Room, error) {
	if buildingID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "building must be selected"}
	}
	rooms, err := b.gateway.ListRooms(ctx, buildingID)
	if err != nil {
		return nil, translateCatalogError(err, "failed to load rooms")
	}
	return rooms, nil
}

func translateCatalogError(err error, fallback string) error {
	var be *propertycore.BackendError
	if errors.As(err, &be) {
		switch be.Kind {
		case propertycore.KindTransport:
			return &errs.Error{Code: errs.Unavailable, Message: fallback + ": property-core is unreachable"}
		case propertycore.KindState:
			return &errs.Error{Code: errs.PermissionDenied, Message: be.UserMessage()}
		default:
			return &errs.Error{Code: errs.Unavailable, Message: fallback}
		}
	}
	return &errs.Error{Code: errs.Unavailable, Message: fallback}
}
