package postgres

import (
	"testing"
	"time"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDBModel_TruncatesToMicroseconds(t *testing.T) {
	received := time.Date(2026, 10, 19, 10, 0, 0, 123456789, time.UTC)
	validOn := time.Date(1826, 1, 1, 0, 0, 0, 999, time.UTC)
	req := &domain.ValidationRequest{
		ID:               1,
		Status:           domain.StatusValid,
		ValidOn:          &validOn,
		ResponseReceived: &received,
	}

	m := toDBModel(req)

	require.NotNil(t, m.ResponseReceived)
	assert.Equal(t, 123456000, m.ResponseReceived.Nanosecond())
	require.NotNil(t, m.ValidOn)
	assert.Equal(t, 0, m.ValidOn.Nanosecond())
	assert.Equal(t, 123456789, req.ResponseReceived.Nanosecond())
}

func TestToDBModel_KeepsNilTimestamps(t *testing.T) {
	m := toDBModel(domain.NewValidationRequest(2))

	assert.Nil(t, m.ValidOn)
	assert.Nil(t, m.ResponseReceived)
}
