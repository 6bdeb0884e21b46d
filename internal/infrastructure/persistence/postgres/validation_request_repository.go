package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ValidationRequestRepository struct {
	q Executor
}

func NewValidationRequestRepository(db *DB) *ValidationRequestRepository {
	return &ValidationRequestRepository{q: db.Pool}
}

// Save inserts the request or overwrites every mutable column of an existing row.
// Timestamps are stored at microsecond resolution.
func (r *ValidationRequestRepository) Save(ctx context.Context, req *domain.ValidationRequest) (*domain.ValidationRequest, error) {
	query := `
		INSERT INTO validation_requests (
			id, status, valid_on, fail_reason, response_received, retries
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
			valid_on = EXCLUDED.valid_on,
			fail_reason = EXCLUDED.fail_reason,
			response_received = EXCLUDED.response_received,
			retries = EXCLUDED.retries,
			updated_at = NOW()
	`

	m := toDBModel(req)
	_, err := r.q.Exec(ctx, query,
		m.ID,
		m.Status,
		m.ValidOn,
		m.FailReason,
		m.ResponseReceived,
		m.Retries,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save validation request: %w", err)
	}

	return req, nil
}

// FindByID retrieves a validation request
func (r *ValidationRequestRepository) FindByID(ctx context.Context, id int64) (*domain.ValidationRequest, error) {
	query := `
		SELECT id, status, valid_on, fail_reason, response_received, retries
		FROM validation_requests WHERE id = $1
	`

	row := r.q.QueryRow(ctx, query, id)
	return scanValidationRequest(row)
}

// scanValidationRequest converts a database row into a domain ValidationRequest.
// Returns domain.ErrRequestNotFound if the row doesn't exist.
func scanValidationRequest(row pgx.Row) (*domain.ValidationRequest, error) {
	var m ValidationRequestModel
	err := row.Scan(
		&m.ID, &m.Status, &m.ValidOn, &m.FailReason, &m.ResponseReceived, &m.Retries,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to scan validation request: %w", err)
	}
	return toDomainModel(m)
}
