package httpapi

import "fmt"

const (
	CodeValidation   = "validation"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeUnavailable  = "unavailable"
	CodeInternal     = "internal"
)

// Error is the wire-level error shape; every failure leaves the API as
// {"ok":false,"error":{code,message,transient}}.
type Error struct {
	Code      string
	Message   string
	Transient bool
	Status    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func statusForCode(code string) int {
	switch code {
	case CodeValidation:
		return 400
	case CodeUnauthorized:
		return 401
	case CodeNotFound:
		return 404
	case CodeConflict:
		return 409
	case CodeUnavailable:
		return 503
	default:
		return 500
	}
}

func newError(code, message string, transient bool) *Error {
	return &Error{Code: code, Message: message, Transient: transient, Status: statusForCode(code)}
}

func validationError(message string) *Error {
	return newError(CodeValidation, message, false)
}

func unauthorizedError(message string) *Error {
	return newError(CodeUnauthorized, message, false)
}

func notFoundError(message string) *Error {
	return newError(CodeNotFound, message, false)
}

func conflictError(message string) *Error {
	return newError(CodeConflict, message, false)
}

func unavailableError(message string) *Error {
	return newError(CodeUnavailable, message, true)
}
