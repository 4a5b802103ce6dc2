package model

import "strings"

// FieldError is a single validation failure tied to a payload field path
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the aggregate result of validating a payload. It is
// either empty (the payload validates in full) or lists every offending
// field; there is no partial success.
type ValidationErrors []FieldError

// Error implements the error interface
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		if fe.Field == "" {
			msgs[i] = fe.Message
			continue
		}
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a failure for the given field path
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// OrNil returns the collected errors as an error value, or nil when the
// payload validated in full
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
