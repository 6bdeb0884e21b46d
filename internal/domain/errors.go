package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKey      = errors.New("message key is not numeric")
	ErrRequestNotFound = errors.New("validation request not found")
	ErrInvalidStatus   = errors.New("unknown validation status")
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidKey      = "INVALID_KEY"
	ErrCodeRequestNotFound = "REQUEST_NOT_FOUND"
	ErrCodeInvalidStatus   = "INVALID_STATUS"
)

func NewInvalidKeyError(key string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidKey,
		Message: fmt.Sprintf("key %s is not numeric", key),
		Err:     ErrInvalidKey,
	}
}

func NewRequestNotFoundError(key string) *DomainError {
	return &DomainError{
		Code:    ErrCodeRequestNotFound,
		Message: fmt.Sprintf("validation request with key %s not found", key),
		Err:     ErrRequestNotFound,
	}
}

func NewInvalidStatusError(status string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidStatus,
		Message: fmt.Sprintf("unknown validation status %q", status),
		Err:     ErrInvalidStatus,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
