package invoicing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.dev/beta/errs"

	"encore.app/invoicing/gateway/propertycore"
	"encore.app/invoicing/mocks/business/draft_business"
	"encore.app/invoicing/model"
)

func TestSubmitDraftAPI(t *testing.T) {
	workflowID := "draft-key-1"

	testCases := []struct {
		name              string
		draftID           string
		mockInvoice       *propertycore.Invoice
		mockDraft         *model.InvoiceDraft
		mockBusinessError error
		expectedError     string
		expectSignal      bool
	}{
		{
			name:    "successful_submission_signals_workflow",
			draftID: "draft-1",
			mockInvoice: &propertycore.Invoice{
				ID:          "inv-42",
				ContractID:  "contract-9",
				TotalAmount: 605000,
				Status:      "issued",
			},
			mockDraft: &model.InvoiceDraft{
				ID:         "draft-1",
				Status:     model.DraftStatusSubmitted,
				ContractID: "contract-9",
				WorkflowID: &workflowID,
			},
			expectSignal: true,
		},
		{
			name:              "validation_failure_lists_all_problems",
			draftID:           "draft-2",
			mockBusinessError: &errs.Error{Code: errs.InvalidArgument, Message: "room must be selected\ndue date must be set"},
			expectedError:     "room must be selected",
		},
		{
			name:              "backend_rejection_keeps_draft",
			draftID:           "draft-3",
			mockBusinessError: &errs.Error{Code: errs.FailedPrecondition, Message: "room has no active contract"},
			expectedError:     "room has no active contract",
		},
		{
			name:          "empty_draft_id",
			draftID:       "",
			expectedError: "invalid draft ID",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBusiness := draft_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)

			service := &Service{
				business: mockBusiness,
				temporal: mockTemporal,
			}

			originalRunAsync := runAsync
			runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
			defer func() { runAsync = originalRunAsync }()

			if tc.draftID != "" {
				mockBusiness.EXPECT().
					Submit(gomock.Any(), tc.draftID).
					Return(tc.mockInvoice, tc.mockDraft, tc.mockBusinessError).
					Times(1)
			}

			if tc.expectSignal {
				mockTemporal.On("SignalWorkflow",
					mock.Anything, workflowID, "", mock.Anything, mock.Anything,
				).Return(nil)
			}

			response, err := service.SubmitDraft(context.Background(), tc.draftID)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockInvoice.ID, response.Invoice.ID)
				assert.Equal(t, model.DraftStatusSubmitted, response.Draft.Status)
			}
		})
	}
}
