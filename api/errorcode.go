package api

import "github.com/echovault/echovault-api/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid form data",
		1011: "cannot parse request",

		1101: store.ErrIncidentNotFound.Error(),
		1102: store.ErrMediaNotFound.Error(),

		1400: "report analysis failed",
		1402: "media could not be processed",
		1403: "report could not be stored",
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorIncidentNotFound = errorJSON(1101)
	errorMediaNotFound    = errorJSON(1102)

	errorEnrichmentFailed    = errorJSON(1400)
	errorMediaEncodingFailed = errorJSON(1402)
	errorStorageFailed       = errorJSON(1403)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`

	// Errors carries field-keyed validation messages; the "_form" key
	// collects failures not tied to a single field.
	Errors map[string][]string `json:"errors,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorJSONWithFields attaches field-keyed messages to a standard
// error object.
func errorJSONWithFields(code int64, fieldErrors map[string][]string) ErrorResponse {
	resp := errorJSON(code)
	resp.Errors = fieldErrors
	return resp
}

// formErrorJSON reports a failure not tied to a single field under the
// "_form" error slot.
func formErrorJSON(code int64) ErrorResponse {
	resp := errorJSON(code)
	resp.Errors = map[string][]string{formErrorKey: {resp.Message}}
	return resp
}
