package invoicing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/invoicing/mocks/business/catalog_business"
	"encore.app/invoicing/mocks/business/draft_business"
	"encore.app/invoicing/model"
)

func TestSelectRoomAPI(t *testing.T) {
	workflowID := "draft-key-1"

	testCases := []struct {
		name              string
		draftID           string
		request           *SelectRoomRequest
		mockReturn        *model.InvoiceDraft
		mockSnapshotSeq   int64
		mockBusinessError error
		expectedError     string
		expectFetch       bool
	}{
		{
			name:    "successful_selection_triggers_rate_fetch",
			draftID: "draft-1",
			request: &SelectRoomRequest{RoomID: "room-7"},
			mockReturn: &model.InvoiceDraft{
				ID:         "draft-1",
				Status:     model.DraftStatusEditing,
				BuildingID: "bld-1",
				RoomID:     "room-7",
				WorkflowID: &workflowID,
			},
			mockSnapshotSeq: 3,
			expectFetch:     true,
		},
		{
			name:              "selection_without_building_fails",
			draftID:           "draft-2",
			request:           &SelectRoomRequest{RoomID: "room-7"},
			mockBusinessError: &errs.Error{Code: errs.FailedPrecondition, Message: "building must be selected before choosing a room"},
			expectedError:     "building must be selected",
		},
		{
			name:          "empty_draft_id",
			draftID:       "",
			request:       &SelectRoomRequest{RoomID: "room-7"},
			expectedError: "invalid draft ID",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := draft_business.NewMockBusiness(ctrl)
			mockCatalog := catalog_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)

			service := &Service{
				business: mockBusiness,
				catalog:  mockCatalog,
				temporal: mockTemporal,
			}

			// Override async to run synchronously for deterministic test
			originalRunAsync := runAsync
			runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
			defer func() { runAsync = originalRunAsync }()

			if tc.draftID != "" {
				mockBusiness.EXPECT().
					SelectRoom(gomock.Any(), tc.draftID, tc.request.RoomID).
					Return(tc.mockReturn, tc.mockSnapshotSeq, tc.mockBusinessError).
					Times(1)
			}

			if tc.expectFetch {
				snapshot := &model.RoomRateSnapshot{
					RoomID:               tc.request.RoomID,
					ElectricityUnitPrice: 3500,
					WaterModel:           model.WaterModelMetered,
				}
				mockCatalog.EXPECT().
					GetRoomDetail(gomock.Any(), tc.request.RoomID).
					Return(snapshot, nil).
					Times(1)
				mockBusiness.EXPECT().
					ApplyRateSnapshot(gomock.Any(), tc.draftID, tc.mockSnapshotSeq, snapshot).
					Return(nil).
					Times(1)
				mockTemporal.On("SignalWorkflow",
					mock.Anything, workflowID, "", mock.Anything, mock.Anything,
				).Return(nil)
			}

			response, err := service.SelectRoom(context.Background(), tc.draftID, tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.request.RoomID, response.Draft.RoomID)
			}
		})
	}
}

func TestSelectRoomFetchFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := draft_business.NewMockBusiness(ctrl)
	mockCatalog := catalog_business.NewMockBusiness(ctrl)

	service := &Service{
		business: mockBusiness,
		catalog:  mockCatalog,
	}

	originalRunAsync := runAsync
	runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
	defer func() { runAsync = originalRunAsync }()

	mockBusiness.EXPECT().
		SelectRoom(gomock.Any(), "draft-1", "room-7").
		Return(&model.InvoiceDraft{ID: "draft-1", RoomID: "room-7"}, int64(1), nil)

	// GetRoomDetail never errors by contract, but a failed snapshot apply
	// must not surface to the operator.
	mockCatalog.EXPECT().
		GetRoomDetail(gomock.Any(), "room-7").
		Return(&model.RoomRateSnapshot{RoomID: "room-7"}, nil)
	mockBusiness.EXPECT().
		ApplyRateSnapshot(gomock.Any(), "draft-1", int64(1), gomock.Any()).
		Return(errors.New("lock timeout"))

	response, err := service.SelectRoom(context.Background(), "draft-1", &SelectRoomRequest{RoomID: "room-7"})

	assert.NoError(t, err)
	assert.NotNil(t, response)
}
