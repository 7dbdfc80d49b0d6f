package pkg

import "fmt"

// AppError is the error shape every handler returns to HTTP clients.
//
// Code is a stable, machine-readable identifier; Message is safe to show to
// the caller. Err keeps the underlying cause for logs only and is never
// serialized.

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Fields     []FieldViolation
}

// FieldViolation carries field-level validation detail (field path + message).
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError is the JSON body rendered for AppError.
type HTTPError struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Fields  []FieldViolation `json:"fields,omitempty"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Fields: e.Fields}
}

// NewDomainError wraps an underlying cause with a client-facing code/message.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple is NewDomainError without an underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewValidationError builds a 400-style error carrying per-field violations.
func NewValidationError(code, message string, httpStatus int, fields []FieldViolation) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Fields: fields}
}
