package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
	"go.etcd.io/bbolt"
)

type requestRecord struct {
	ID               int64      `json:"id"`
	Status           string     `json:"status"`
	ValidOn          *time.Time `json:"valid_on,omitempty"`
	FailReason       *string    `json:"fail_reason,omitempty"`
	ResponseReceived *time.Time `json:"response_received,omitempty"`
	Retries          int        `json:"retries"`
}

type ValidationRequestRepository struct {
	db *DB
}

func NewValidationRequestRepository(db *DB) *ValidationRequestRepository {
	return &ValidationRequestRepository{db: db}
}

// Save upserts the record for req.ID.
func (r *ValidationRequestRepository) Save(ctx context.Context, req *domain.ValidationRequest) (*domain.ValidationRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, err := json.Marshal(requestRecord{
		ID:               req.ID,
		Status:           string(req.Status),
		ValidOn:          req.ValidOn,
		FailReason:       req.FailReason,
		ResponseReceived: req.ResponseReceived,
		Retries:          req.Retries,
	})
	if err != nil {
		return nil, fmt.Errorf("bolt: marshal request %d: %w", req.ID, err)
	}

	err = r.db.bolt.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRequests).Put(idKey(req.ID), val)
	})
	if err != nil {
		return nil, fmt.Errorf("bolt: save request %d: %w", req.ID, err)
	}
	return req, nil
}

// FindByID returns domain.ErrRequestNotFound when id has never been saved.
func (r *ValidationRequestRepository) FindByID(ctx context.Context, id int64) (*domain.ValidationRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rec requestRecord
	err := r.db.bolt.View(func(tx *bbolt.Tx) error {
		val := tx.Bucket(bucketRequests).Get(idKey(id))
		if val == nil {
			return domain.ErrRequestNotFound
		}
		return json.Unmarshal(val, &rec)
	})
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseValidationStatus(rec.Status)
	if err != nil {
		return nil, fmt.Errorf("bolt: request %d: %w", id, err)
	}

	return &domain.ValidationRequest{
		ID:               rec.ID,
		Status:           status,
		ValidOn:          rec.ValidOn,
		FailReason:       rec.FailReason,
		ResponseReceived: rec.ResponseReceived,
		Retries:          rec.Retries,
	}, nil
}

func idKey(id int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(id))
	return key
}
