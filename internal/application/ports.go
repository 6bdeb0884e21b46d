package application

import (
	"context"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
)

// ValidationRequestRepository is the port for persistence.
// FindByID returns domain.ErrRequestNotFound when no record exists for id.
type ValidationRequestRepository interface {
	Save(ctx context.Context, req *domain.ValidationRequest) (*domain.ValidationRequest, error)
	FindByID(ctx context.Context, id int64) (*domain.ValidationRequest, error)
}
