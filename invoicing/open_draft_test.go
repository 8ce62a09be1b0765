package invoicing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.app/invoicing/mocks/business/draft_business"
	"encore.app/invoicing/model"
)

// Run tests using `encore test`, which compiles the Encore app and then runs `go test`.
// It supports all the same flags that the `go test` command does.

func TestOpenDraftAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusiness := draft_business.NewMockBusiness(ctrl)
	mockTemporal := mocks.NewClient(t)

	service := &Service{
		business: mockBusiness,
		temporal: mockTemporal,
	}

	now := time.Now()
	workflowID := "draft-test-key-123"

	testCases := []struct {
		name               string
		request            *OpenDraftRequest
		mockBusinessReturn *model.InvoiceDraft
		mockBusinessError  error
		mockTemporalError  error
		expectedError      string
		expectSuccess      bool
		expectWorkflow     bool
	}{
		{
			name:    "successful_draft_open_with_workflow",
			request: &OpenDraftRequest{IdempotencyKey: "test-key-123"},
			mockBusinessReturn: &model.InvoiceDraft{
				ID:             "draft-1",
				Status:         model.DraftStatusEditing,
				WaterModel:     model.WaterModelMetered,
				IdempotencyKey: "test-key-123",
				WorkflowID:     &workflowID,
				CreatedAt:      now,
			},
			expectSuccess:  true,
			expectWorkflow: true,
		},
		{
			name:    "successful_draft_open_workflow_fails",
			request: &OpenDraftRequest{IdempotencyKey: "test-key-456"},
			mockBusinessReturn: &model.InvoiceDraft{
				ID:             "draft-2",
				Status:         model.DraftStatusEditing,
				WaterModel:     model.WaterModelMetered,
				IdempotencyKey: "test-key-456",
				CreatedAt:      now,
			},
			mockTemporalError: errors.New("temporal workflow failed"),
			expectSuccess:     true, // API still succeeds even if workflow fails
			expectWorkflow:    true,
		},
		{
			name:              "draft_open_fails",
			request:           &OpenDraftRequest{IdempotencyKey: "test-key-789"},
			mockBusinessError: errors.New("database error"),
			expectedError:     "database error",
			expectSuccess:     false,
			expectWorkflow:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockBusiness.EXPECT().
				OpenDraft(gomock.Any(), tc.request.IdempotencyKey).
				Return(tc.mockBusinessReturn, tc.mockBusinessError).
				Times(1)

			if tc.expectWorkflow && tc.mockBusinessError == nil {
				mockTemporal.On("ExecuteWorkflow",
					mock.Anything, // context
					mock.Anything, // StartWorkflowOptions
					mock.Anything, // workflow function
					mock.Anything, // workflow args
				).Return(nil, tc.mockTemporalError)
			}

			response, err := service.OpenDraft(context.Background(), tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockBusinessReturn.ID, response.Draft.ID)
				assert.Equal(t, model.DraftStatusEditing, response.Draft.Status)
				assert.Equal(t, tc.mockBusinessReturn.IdempotencyKey, response.Draft.IdempotencyKey)
			}
		})
	}
}
