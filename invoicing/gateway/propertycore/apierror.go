package propertycore

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies a backend failure after normalization.
type ErrorKind string

const (
	// KindTransport covers network-level failures: the request never
	// produced an HTTP response.
	KindTransport ErrorKind = "transport"
	// KindValidation covers per-field rejections of the payload.
	KindValidation ErrorKind = "validation"
	// KindState covers authorization/state refusals, e.g. the room has no
	// active contract.
	KindState ErrorKind = "state"
	// KindGeneric covers everything else, including unparseable bodies.
	KindGeneric ErrorKind = "generic"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BackendError is the single normalized representation of the backend's
// three error envelope shapes: a flat message, a field-error list, and a
// FastAPI-style detail list.
type BackendError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
	Fields     []FieldError
}

func (e *BackendError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d field errors)", e.Message, len(e.Fields))
}

// UserMessage renders the consolidated multi-line message shown to the
// operator. Field errors become one line each.
func (e *BackendError) UserMessage() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	lines := make([]string, 0, len(e.Fields)+1)
	if e.Message != "" {
		lines = append(lines, e.Message)
	}
	for _, fe := range e.Fields {
		if fe.Field != "" {
			lines = append(lines, fe.Field+": "+fe.Message)
		} else {
			lines = append(lines, fe.Message)
		}
	}
	return strings.Join(lines, "\n")
}

// errorEnvelope matches all three shapes the backend is known to emit.
type errorEnvelope struct {
	Message string `json:"message"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
	Detail json.RawMessage `json:"detail"`
}

type fastAPIDetail struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

func transportError(err error) *BackendError {
	return &BackendError{
		Kind:    KindTransport,
		Message: "property-core is unreachable: " + err.Error(),
	}
}

// parseBackendError normalizes an HTTP error response body.
func parseBackendError(statusCode int, body []byte) *BackendError {
	be := &BackendError{
		StatusCode: statusCode,
		Kind:       kindForStatus(statusCode),
		Message:    http.StatusText(statusCode),
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		be.Kind = KindGeneric
		return be
	}

	if env.Message != "" {
		be.Message = env.Message
	}

	for _, fe := range env.Errors {
		be.Fields = append(be.Fields, FieldError{Field: fe.Field, Message: fe.Message})
	}

	if len(be.Fields) == 0 && len(env.Detail) > 0 {
		be.Fields = append(be.Fields, parseDetail(env.Detail)...)
	}

	if len(be.Fields) > 0 {
		be.Kind = KindValidation
		if env.Message == "" {
			be.Message = "the backend rejected the invoice"
		}
	}

	return be
}

// parseDetail handles FastAPI's detail field, which is either a plain string
// or a list of {loc, msg} items. The last loc element names the field.
func parseDetail(raw json.RawMessage) []FieldError {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return []FieldError{{Message: asString}}
	}

	var items []fastAPIDetail
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	result := make([]FieldError, 0, len(items))
	for _, item := range items {
		fe := FieldError{Message: item.Msg}
		if len(item.Loc) > 0 {
			var field string
			if err := json.Unmarshal(item.Loc[len(item.Loc)-1], &field); err != nil {
				// Numeric loc component, e.g. an array index.
				field = strings.TrimSpace(string(item.Loc[len(item.Loc)-1]))
			}
			fe.Field = field
		}
		result = append(result, fe)
	}
	return result
}

func kindForStatus(statusCode int) ErrorKind {
	switch {
	case statusCode == http.StatusUnprocessableEntity || statusCode == http.StatusBadRequest:
		return KindValidation
	case statusCode == http.StatusConflict || statusCode == http.StatusForbidden:
		return KindState
	default:
		return KindGeneric
	}
}
