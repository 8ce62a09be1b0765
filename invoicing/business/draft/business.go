package draft

import (
	"context"

	"encore.app/invoicing/domain"
	"encore.app/invoicing/events"
	"encore.app/invoicing/gateway/propertycore"
	"encore.app/invoicing/model"
	"encore.app/invoicing/repository/drafts"
	"encore.app/invoicing/repository/fees"
)

type Business interface {
	OpenDraft(ctx context.Context, idempotencyKey string) (*model.InvoiceDraft, error)
	GetDraft(ctx context.Context, id string) (*model.InvoiceDraft, error)
	ListDrafts(ctx context.Context, limit, offset int32) ([]*model.InvoiceDraft, int64, error)

	UpdateFields(ctx context.Context, id string, change FieldChange) (*model.InvoiceDraft, error)
	SelectBuilding(ctx context.Context, id, buildingID string) (*model.InvoiceDraft, error)
	SelectRoom(ctx context.Context, id, roomID string) (*model.InvoiceDraft, int64, error)
	ApplyRateSnapshot(ctx context.Context, id string, snapshotSeq int64, snapshot *model.RoomRateSnapshot) error

	AddServiceFee(ctx context.Context, id string, fee *model.ServiceFee) (*model.InvoiceDraft, error)
	RemoveServiceFee(ctx context.Context, id string, feeID int32) (*model.InvoiceDraft, error)

	RecomputeTotal(ctx context.Context, id string) error
	Submit(ctx context.Context, id string) (*propertycore.Invoice, *model.InvoiceDraft, error)
	Discard(ctx context.Context, id, reason string) error
}

// business handles the draft lifecycle: reducer-style field changes with
// synchronous total recomputation, room selection with snapshot generation
// tokens, and submission to property-core.
type business struct {
	draftRepo    drafts.Querier
	feeRepo      fees.Querier
	gateway      propertycore.Gateway
	publisher    events.Publisher
	stateMachine *domain.DraftStateMachine
}

func NewDraftBusiness(
	draftRepo drafts.Querier,
	feeRepo fees.Querier,
	gateway propertycore.Gateway,
	publisher events.Publisher,
	stateMachine *domain.DraftStateMachine,
) Business {
	return &business{
		draftRepo:    draftRepo,
		feeRepo:      feeRepo,
		gateway:      gateway,
		publisher:    publisher,
		stateMachine: stateMachine,
	}
}

// convertDBDraftToModel converts a database Draft plus its fee rows to the
// domain model.
func convertDBDraftToModel(dbDraft drafts.Draft, feeRows []fees.DraftFee) *model.InvoiceDraft {
	d := &model.InvoiceDraft{
		ID:                   dbDraft.ID,
		Status:               model.DraftStatus(dbDraft.Status),
		ElectricityOldIndex:  dbDraft.ElectricityOldIndex,
		ElectricityNewIndex:  dbDraft.ElectricityNewIndex,
		WaterModel:           model.WaterModel(dbDraft.WaterModel),
		WaterOldIndex:        dbDraft.WaterOldIndex,
		WaterNewIndex:        dbDraft.WaterNewIndex,
		NumberOfPeople:       dbDraft.NumberOfPeople,
		IncludeRoomRent:      dbDraft.IncludeRoomRent,
		ElectricityUnitPrice: dbDraft.ElectricityUnitPrice,
		WaterUnitPrice:       dbDraft.WaterUnitPrice,
		WaterPricePerPerson:  dbDraft.WaterPricePerPerson,
		RoomBasePrice:        dbDraft.RoomBasePrice,
		DepositAmount:        dbDraft.DepositAmount,
		SnapshotSeq:          dbDraft.SnapshotSeq,
		MeterRollback:        dbDraft.MeterRollback,
		ComputedTotal:        dbDraft.ComputedTotal,
		IdempotencyKey:       dbDraft.IdempotencyKey,
		CreatedAt:            dbDraft.CreatedAt.Time,
		UpdatedAt:            dbDraft.UpdatedAt.Time,
	}

	if dbDraft.BuildingID.Valid {
		d.BuildingID = dbDraft.BuildingID.String
	}
	if dbDraft.RoomID.Valid {
		d.RoomID = dbDraft.RoomID.String
	}
	if dbDraft.ContractID.Valid {
		d.ContractID = dbDraft.ContractID.String
	}
	if dbDraft.BillingPeriod.Valid {
		d.BillingPeriod = dbDraft.BillingPeriod.String
	}
	if dbDraft.DueDate.Valid {
		due := dbDraft.DueDate.Time
		d.DueDate = &due
	}
	if dbDraft.Notes.Valid {
		notes := dbDraft.Notes.String
		d.Notes = &notes
	}
	if dbDraft.WorkflowID.Valid {
		wf := dbDraft.WorkflowID.String
		d.WorkflowID = &wf
	}

	d.ServiceFees = make([]model.ServiceFee, 0, len(feeRows))
	for _, row := range feeRows {
		d.ServiceFees = append(d.ServiceFees, convertDBFeeToModel(row))
	}

	return d
}

func convertDBFeeToModel(row fees.DraftFee) model.ServiceFee {
	fee := model.ServiceFee{
		ID:        row.ID,
		DraftID:   row.DraftID,
		Name:      row.Name,
		Amount:    row.Amount,
		Position:  row.Position,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.Description.Valid {
		desc := row.Description.String
		fee.Description = &desc
	}
	return fee
}
