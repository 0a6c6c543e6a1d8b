package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError points at one bad input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is the full set of problems found in one request,
// so the caller can fix everything in one round trip.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

type ConflictError struct {
	Resource string
	Reason   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Resource, e.Reason)
}

// TechnicalError wraps a storage failure. The underlying error stays
// attached for logs but is never shown to callers.
type TechnicalError struct {
	Code    string
	Message string
	Cause   error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Cause
}

func IsValidation(err error) bool {
	var ve ValidationErrors
	var single ValidationError
	return errors.As(err, &ve) || errors.As(err, &single)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsForbidden(err error) bool {
	var f *ForbiddenError
	return errors.As(err, &f)
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// notFoundOrStorage passes a repository NotFoundError through and
// wraps anything else so SQL detail never reaches the caller.
func notFoundOrStorage(resource string, err error) error {
	if IsNotFound(err) {
		return err
	}
	return storageError("find "+resource, err)
}

func storageError(op string, cause error) *TechnicalError {
	return &TechnicalError{
		Code:    "STORAGE_ERROR",
		Message: "internal storage failure during " + op,
		Cause:   cause,
	}
}
