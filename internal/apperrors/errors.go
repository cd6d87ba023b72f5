package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnknownReference indicates that a document line points at an account, product,
// supplier, customer or session that does not exist.
var ErrUnknownReference = errors.New("unknown reference")

// ErrEmptyDocument indicates a header submitted with zero line items.
var ErrEmptyDocument = errors.New("document has no line items")

// ErrInvalidState indicates an operation attempted against a document whose status forbids it.
var ErrInvalidState = errors.New("invalid document state")

// ErrStorage indicates that the atomic write could not complete for an infrastructure reason.
var ErrStorage = errors.New("storage failure")

// ErrUnbalancedEntry indicates a journal entry whose debits and credits differ.
var ErrUnbalancedEntry = errors.New("journal entry is not balanced")

// Specialised kinds. They stay matchable against their parent kind with errors.Is.
var (
	ErrDuplicateCode      = fmt.Errorf("%w: duplicate code", ErrDuplicate)
	ErrUnknownAccount     = fmt.Errorf("%w: account", ErrUnknownReference)
	ErrUnknownProduct     = fmt.Errorf("%w: product", ErrUnknownReference)
	ErrUnknownSupplier    = fmt.Errorf("%w: supplier", ErrUnknownReference)
	ErrUnknownCustomer    = fmt.Errorf("%w: customer", ErrUnknownReference)
	ErrUnknownSession     = fmt.Errorf("%w: session", ErrUnknownReference)
	ErrSessionAlreadyOpen = fmt.Errorf("%w: user already has an open session", ErrInvalidState)
	ErrSessionNotFound    = fmt.Errorf("%w: session", ErrNotFound)
)

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError. A 5xx code marks the error as a storage failure
// so callers can match it with errors.Is(err, ErrStorage).
func NewAppError(code int, message string, err error) *AppError {
	if code >= http.StatusInternalServerError && !errors.Is(err, ErrStorage) {
		if err == nil {
			err = ErrStorage
		} else {
			err = fmt.Errorf("%w: %w", ErrStorage, err)
		}
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// StatusCode maps an error to the HTTP status the handlers respond with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrValidation), errors.Is(err, ErrEmptyDocument), errors.Is(err, ErrUnbalancedEntry):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
