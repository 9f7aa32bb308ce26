// ===============================
// internal/services/errors.go
// ===============================

package services

// ValidationError marks a client-side input failure: a structurally
// required parameter is missing. Handlers map it to a 400; everything
// else coming out of a service is a storage failure and maps to a 500.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

var ErrYearRequired = ValidationError{Message: "year parameter is required"}
