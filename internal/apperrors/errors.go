package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRepository indicates a failure in the storage layer.
var ErrRepository = errors.New("repository error")

// ErrRateFetch indicates that the exchange rate table could not be fetched.
var ErrRateFetch = errors.New("rate fetch error")

// ErrConversion indicates that the rate provider failed to convert an amount.
var ErrConversion = errors.New("conversion error")

// ErrUnsupportedCurrency indicates that the rate provider does not know a currency code.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// AppError carries an error kind (one of the sentinels above), a message that
// is safe to show to API clients and the underlying cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError creates an AppError of the given kind.
func NewAppError(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewValidationError creates a validation error with a single message.
func NewValidationError(message string) *AppError {
	return NewAppError(ErrValidation, message, nil)
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

// NewConflictError creates an error for a create that collides with an existing resource.
func NewConflictError(message string) *AppError {
	return NewAppError(ErrDuplicate, message, nil)
}

// NewRepositoryError wraps a storage failure.
func NewRepositoryError(message string, err error) *AppError {
	return NewAppError(ErrRepository, message, err)
}

// NewRateFetchError wraps a failure to load a rate table.
func NewRateFetchError(message string, err error) *AppError {
	return NewAppError(ErrRateFetch, message, err)
}

// NewConversionError wraps a failure to convert an amount.
func NewConversionError(message string, err error) *AppError {
	return NewAppError(ErrConversion, message, err)
}

// NewUnsupportedCurrencyError reports a currency code rejected by the rate provider.
func NewUnsupportedCurrencyError(message string) *AppError {
	return NewAppError(ErrUnsupportedCurrency, message, nil)
}

// ValidationError holds per-field messages produced by the rule validator.
type ValidationError struct {
	Fields map[string]string
}

// NewFieldValidationError creates a ValidationError from a field -> message map.
func NewFieldValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) true for field validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// PublicMessage returns the client-facing message of err. Wrapped driver or
// transport details are not included.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
