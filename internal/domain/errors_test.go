package domain_test

import (
	"errors"
	"testing"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewInvalidKeyError(t *testing.T) {
	err := domain.NewInvalidKeyError("123a")

	assert.Equal(t, "key 123a is not numeric", err.Error())
	assert.True(t, errors.Is(err, domain.ErrInvalidKey))
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidKey))
}

func TestNewRequestNotFoundError(t *testing.T) {
	err := domain.NewRequestNotFoundError("101")

	assert.True(t, errors.Is(err, domain.ErrRequestNotFound))
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeRequestNotFound))
	assert.False(t, domain.IsErrorCode(err, domain.ErrCodeInvalidKey))
}
