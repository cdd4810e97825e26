package errors

import (
	"errors"
	"fmt"
	"strings"
)

const NonFieldErrors = "non_field_errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrProtected = errors.New("object is referenced and cannot be deleted")
)

// ValidationError is a client input problem tied to a single wire field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

func NewRequiredError(field string) error {
	return NewValidationError(field, "This field is required.")
}

func NewDoesNotExistError(field string, id int64) error {
	return NewValidationError(field, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
}

type ValidationErrors struct {
	Errors []error
}

func (ve *ValidationErrors) Error() string {
	errorMessages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		errorMessages[i] = err.Error()
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(errorMessages, "; "))
}

func (ve *ValidationErrors) Add(err error) {
	ve.Errors = append(ve.Errors, err)
}

// Err returns nil when nothing was collected so callers can `return ve.Err()`.
func (ve *ValidationErrors) Err() error {
	if len(ve.Errors) == 0 {
		return nil
	}
	return ve
}

func IsValidationErrors(err error) bool {
	var validationErrors *ValidationErrors
	ok := errors.As(err, &validationErrors)
	return ok
}

// Fields flattens err into the per-field message map sent to clients.
// It returns nil when err carries no validation detail.
func Fields(err error) map[string][]string {
	var many *ValidationErrors
	if errors.As(err, &many) {
		fields := make(map[string][]string)
		for _, e := range many.Errors {
			for k, v := range Fields(e) {
				fields[k] = append(fields[k], v...)
			}
		}
		return fields
	}
	var one *ValidationError
	if errors.As(err, &one) {
		field := one.Field
		if field == "" {
			field = NonFieldErrors
		}
		return map[string][]string{field: {one.Msg}}
	}
	return nil
}
