package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure of an error for API responses and
// telemetry. It is a flat rendering: the wrapped error chain is never included.
type ErrorResponse struct {
	// Variant is the variant name, e.g. "FileNotFound".
	Variant string `json:"variant"`

	// Kind is the broad category, e.g. "RESOURCE_NOT_FOUND".
	Kind string `json:"kind"`

	// Message is the end-user rendering.
	Message string `json:"message"`

	// Diagnostic is the developer rendering.
	// Only filled by ToDiagnosticJSON.
	Diagnostic string `json:"diagnostic,omitempty"`

	// Stream is the implicated resource name, if any.
	Stream string `json:"stream,omitempty"`

	// Silent mirrors Exception.IsSilent.
	Silent bool `json:"silent,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for end users.
// Returns nil if err is nil.
//
// For Exception instances, extracts variant, kind, display message, stream and
// silent flag. For standard errors, uses KindUnknown and the generic display
// message; the raw error text is withheld because it may contain internal
// details such as paths or addresses.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var exc Exception
	if !As(err, &exc) {
		return &ErrorResponse{
			Variant: RuntimeError.String(),
			Kind:    string(KindUnknown),
			Message: FormatDisplay(err),
		}
	}

	return &ErrorResponse{
		Variant: exc.Variant().String(),
		Kind:    string(exc.Kind()),
		Message: exc.FormatDisplay(),
		Stream:  exc.StreamName(),
		Silent:  exc.IsSilent(),
	}
}

// ToDiagnosticJSON is ToJSON plus the diagnostic rendering, for logs and
// telemetry. Returns nil if err is nil.
func ToDiagnosticJSON(err error) *ErrorResponse {
	resp := ToJSON(err)
	if resp == nil {
		return nil
	}
	resp.Diagnostic = FormatDiagnostic(err)
	return resp
}

// MarshalJSON implements json.Marshaler using the end-user form of ToJSON.
//
// Example:
//
//	err := errors.NewFileNotFound("bios.bin")
//	data, _ := json.Marshal(err)
//	// {"variant":"FileNotFound","kind":"RESOURCE_NOT_FOUND","message":"...","stream":"bios.bin"}
func (e *exception) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToJSON(e))
	if err != nil {
		// ErrorResponse holds only strings and a bool, so this should not happen.
		return nil, Wrap(err, "failed to marshal error response")
	}
	return data, nil
}
