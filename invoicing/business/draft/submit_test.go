package draft

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"encore.dev/beta/errs"

	"encore.app/invoicing/gateway/propertycore"
	"encore.app/invoicing/model"
)

func validDraftForSubmit() *model.InvoiceDraft {
	due := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	return &model.InvoiceDraft{
		ID:                  "draft-1",
		Status:              model.DraftStatusEditing,
		BuildingID:          "bld-1",
		RoomID:              "room-1",
		BillingPeriod:       "2025-07",
		DueDate:             &due,
		WaterModel:          model.WaterModelMetered,
		ElectricityOldIndex: 100,
		ElectricityNewIndex: 150,
		WaterOldIndex:       40,
		WaterNewIndex:       50,
		NumberOfPeople:      2,
		ComputedTotal:       605000,
	}
}

func TestValidateForSubmit(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(d *model.InvoiceDraft)
		expected []string
	}{
		{
			name:   "valid_draft_passes",
			mutate: func(d *model.InvoiceDraft) {},
		},
		{
			name: "missing_room_and_due_date_reported_together",
			mutate: func(d *model.InvoiceDraft) {
				d.RoomID = ""
				d.DueDate = nil
			},
			expected: []string{"room must be selected", "due date must be set"},
		},
		{
			name: "missing_building",
			mutate: func(d *model.InvoiceDraft) {
				d.BuildingID = ""
			},
			expected: []string{"building must be selected"},
		},
		{
			name: "missing_billing_period",
			mutate: func(d *model.InvoiceDraft) {
				d.BillingPeriod = ""
			},
			expected: []string{"billing period must be set"},
		},
		{
			// Rollback readings are clamped to zero usage and flagged on
			// the breakdown; they never block submission.
			name: "electricity_rollback_does_not_block_submission",
			mutate: func(d *model.InvoiceDraft) {
				d.ElectricityOldIndex = 150
				d.ElectricityNewIndex = 100
			},
		},
		{
			name: "water_rollback_does_not_block_submission",
			mutate: func(d *model.InvoiceDraft) {
				d.WaterNewIndex = 30
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraftForSubmit()
			tc.mutate(d)

			err := validateForSubmit(d)
			if len(tc.expected) == 0 {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			var apiErr *errs.Error
			assert.True(t, errors.As(err, &apiErr))
			assert.Equal(t, errs.InvalidArgument, apiErr.Code)
			for _, msg := range tc.expected {
				assert.Contains(t, apiErr.Message, msg)
			}
		})
	}
}

func TestBuildInvoiceRequest(t *testing.T) {
	t.Run("metered_water_sends_indexes", func(t *testing.T) {
		d := validDraftForSubmit()
		d.ServiceFees = []model.ServiceFee{
			{Name: "Internet", Amount: 100000},
			{Name: "   ", Amount: 50000},
			{Name: "Trash", Amount: 30000},
		}

		req := buildInvoiceRequest(d, "contract-9")

		assert.Equal(t, "contract-9", req.ContractID)
		assert.Equal(t, "2025-07-01", req.BillingMonth)
		assert.Equal(t, "2025-07-10", req.DueDate)
		assert.NotNil(t, req.WaterOldIndex)
		assert.Equal(t, int64(40), *req.WaterOldIndex)
		assert.Equal(t, int64(50), *req.WaterNewIndex)
		assert.Equal(t, int64(605000), req.ComputedTotalPreview)

		// The unnamed fee never reaches the backend.
		assert.Len(t, req.ServiceFees, 2)
		assert.Equal(t, "Internet", req.ServiceFees[0].Name)
		assert.Equal(t, "Trash", req.ServiceFees[1].Name)
	})

	t.Run("per_person_water_omits_indexes", func(t *testing.T) {
		d := validDraftForSubmit()
		d.WaterModel = model.WaterModelPerPerson

		req := buildInvoiceRequest(d, "contract-9")

		assert.Nil(t, req.WaterOldIndex)
		assert.Nil(t, req.WaterNewIndex)
	})

	t.Run("empty_fee_list_marshals_as_empty_array", func(t *testing.T) {
		d := validDraftForSubmit()

		req := buildInvoiceRequest(d, "contract-9")

		assert.NotNil(t, req.ServiceFees)
		assert.Len(t, req.ServiceFees, 0)
	})
}

func TestTranslateBackendError(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode errs.ErrCode
		expectedMsg  string
	}{
		{
			name: "validation_maps_to_invalid_argument",
			err: &propertycore.BackendError{
				StatusCode: 422,
				Kind:       propertycore.KindValidation,
				Fields: []propertycore.FieldError{
					{Field: "due_date", Message: "must be in the future"},
				},
			},
			expectedCode: errs.InvalidArgument,
			expectedMsg:  "due_date: must be in the future",
		},
		{
			name: "state_conflict_maps_to_failed_precondition",
			err: &propertycore.BackendError{
				StatusCode: 409,
				Kind:       propertycore.KindState,
				Message:    "invoice already exists for this period",
			},
			expectedCode: errs.FailedPrecondition,
			expectedMsg:  "invoice already exists for this period",
		},
		{
			name: "transport_maps_to_unavailable",
			err: &propertycore.BackendError{
				Kind: propertycore.KindTransport,
			},
			expectedCode: errs.Unavailable,
			expectedMsg:  "property-core is unreachable",
		},
		{
			name:         "unknown_error_uses_fallback",
			err:          errors.New("boom"),
			expectedCode: errs.Unavailable,
			expectedMsg:  "failed to submit invoice",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			translated := translateBackendError(tc.err, "failed to submit invoice")

			var apiErr *errs.Error
			assert.True(t, errors.As(translated, &apiErr))
			assert.Equal(t, tc.expectedCode, apiErr.Code)
			assert.Contains(t, apiErr.Message, tc.expectedMsg)
		})
	}
}
