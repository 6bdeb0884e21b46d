package services

import (
	"context"
	"errors"

	"github.com/DanielPopoola/validation-status-listener/internal/application"
	"github.com/DanielPopoola/validation-status-listener/internal/domain"
)

type QueryService struct {
	requestRepo application.ValidationRequestRepository
}

func NewQueryService(
	requestRepo application.ValidationRequestRepository,
) *QueryService {
	return &QueryService{
		requestRepo: requestRepo,
	}
}

func (s *QueryService) FindByID(ctx context.Context, key string) (*domain.ValidationRequest, error) {
	id, err := parseKey(key)
	if err != nil {
		return nil, err
	}

	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return nil, domain.NewRequestNotFoundError(key)
		}
		return nil, err
	}
	return req, nil
}
