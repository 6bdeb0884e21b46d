package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
	"github.com/DanielPopoola/validation-status-listener/internal/infrastructure/codec"
)

// ErrorCategory represents the nature of an error for redelivery decisions
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for redelivery and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	// A message that names a bad or unknown request will not get better on redelivery
	if errors.Is(err, domain.ErrInvalidKey) ||
		errors.Is(err, domain.ErrRequestNotFound) ||
		errors.Is(err, codec.ErrMalformedMessage) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput, ErrCodeInvalidSignature:
			return CategoryClientError
		case ErrCodeUnavailable:
			return CategoryTransient
		}
	}

	return CategoryInfrastructure
}

// IsRetryable returns true if the error category suggests redelivery
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case errors.Is(err, domain.ErrInvalidKey),
		errors.Is(err, codec.ErrMalformedMessage):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrInvalidKey):
		return domain.ErrCodeInvalidKey
	case errors.Is(err, domain.ErrRequestNotFound):
		return domain.ErrCodeRequestNotFound
	case errors.Is(err, codec.ErrMalformedMessage):
		return "MALFORMED_MESSAGE"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	}

	return ErrCodeInternal
}
