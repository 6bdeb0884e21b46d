package postgres

import (
	"time"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m ValidationRequestModel) (*domain.ValidationRequest, error) {
	status, err := domain.ParseValidationStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return &domain.ValidationRequest{
		ID:               m.ID,
		Status:           status,
		ValidOn:          m.ValidOn,
		FailReason:       m.FailReason,
		ResponseReceived: m.ResponseReceived,
		Retries:          m.Retries,
	}, nil
}

// toDBModel: maps domain entity to db model
func toDBModel(r *domain.ValidationRequest) *ValidationRequestModel {
	return &ValidationRequestModel{
		ID:               r.ID,
		Status:           string(r.Status),
		ValidOn:          toMicros(r.ValidOn),
		FailReason:       r.FailReason,
		ResponseReceived: toMicros(r.ResponseReceived),
		Retries:          r.Retries,
	}
}

// toMicros matches the TIMESTAMPTZ resolution so a saved value reads back unchanged.
func toMicros(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	truncated := t.Truncate(time.Microsecond)
	return &truncated
}
