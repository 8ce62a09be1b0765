package propertycore

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBackendError(t *testing.T) {
	testCases := []struct {
		name            string
		statusCode      int
		body            string
		expectedKind    ErrorKind
		expectedMessage string
		expectedFields  int
	}{
		{
			name:            "flat_message",
			statusCode:      http.StatusBadRequest,
			body:            `{"message": "billing month already invoiced"}`,
			expectedKind:    KindValidation,
			expectedMessage: "billing month already invoiced",
		},
		{
			name:            "structured_field_errors",
			statusCode:      http.StatusUnprocessableEntity,
			body:            `{"errors": [{"field": "due_date", "message": "must not be in the past"}, {"field": "contract_id", "message": "unknown contract"}]}`,
			expectedKind:    KindValidation,
			expectedMessage: "the backend rejected the invoice",
			expectedFields:  2,
		},
		{
			name:            "fastapi_detail_list",
			statusCode:      http.StatusUnprocessableEntity,
			body:            `{"detail": [{"loc": ["body", "billing_month"], "msg": "invalid date format"}]}`,
			expectedKind:    KindValidation,
			expectedMessage: "the backend rejected the invoice",
			expectedFields:  1,
		},
		{
			name:            "fastapi_detail_string",
			statusCode:      http.StatusBadRequest,
			body:            `{"detail": "invoice already exists"}`,
			expectedKind:    KindValidation,
			expectedMessage: "the backend rejected the invoice",
			expectedFields:  1,
		},
		{
			name:            "conflict_is_state_error",
			statusCode:      http.StatusConflict,
			body:            `{"message": "room has no active contract"}`,
			expectedKind:    KindState,
			expectedMessage: "room has no active contract",
		},
		{
			name:            "unparseable_body_falls_back_to_generic",
			statusCode:      http.StatusInternalServerError,
			body:            `<html>upstream exploded</html>`,
			expectedKind:    KindGeneric,
			expectedMessage: "Internal Server Error",
		},
		{
			name:            "server_error_with_message",
			statusCode:      http.StatusBadGateway,
			body:            `{"message": "upstream timeout"}`,
			expectedKind:    KindGeneric,
			expectedMessage: "upstream timeout",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			be := parseBackendError(tc.statusCode, []byte(tc.body))

			assert.Equal(t, tc.statusCode, be.StatusCode)
			assert.Equal(t, tc.expectedKind, be.Kind)
			assert.Equal(t, tc.expectedMessage, be.Message)
			assert.Len(t, be.Fields, tc.expectedFields)
		})
	}
}

func TestParseBackendError_FieldNamesFromFastAPILoc(t *testing.T) {
	body := `{"detail": [{"loc": ["body", "service_fees", 0, "amount"], "msg": "must be >= 0"}]}`

	be := parseBackendError(http.StatusUnprocessableEntity, []byte(body))

	assert.Len(t, be.Fields, 1)
	assert.Equal(t, "amount", be.Fields[0].Field)
	assert.Equal(t, "must be >= 0", be.Fields[0].Message)
}

func TestUserMessage_MultiLine(t *testing.T) {
	be := &BackendError{
		Kind:    KindValidation,
		Message: "the backend rejected the invoice",
		Fields: []FieldError{
			{Field: "due_date", Message: "must not be in the past"},
			{Message: "general problem"},
		},
	}

	msg := be.UserMessage()

	assert.Contains(t, msg, "the backend rejected the invoice")
	assert.Contains(t, msg, "due_date: must not be in the past")
	assert.Contains(t, msg, "general problem")
}

func TestUserMessage_FlatMessage(t *testing.T) {
	be := &BackendError{Kind: KindGeneric, Message: "upstream timeout"}
	assert.Equal(t, "upstream timeout", be.UserMessage())
}
