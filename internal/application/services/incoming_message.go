package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/validation-status-listener/internal/application"
	"github.com/DanielPopoola/validation-status-listener/internal/domain"
)

// IncomingMessageService applies validation outcome messages to stored requests.
// Load, mutate and save are not guarded against concurrent deliveries for the same id.
type IncomingMessageService struct {
	requestRepo application.ValidationRequestRepository
	logger      *slog.Logger
	now         func() time.Time
}

func NewIncomingMessageService(
	requestRepo application.ValidationRequestRepository,
	logger *slog.Logger,
) *IncomingMessageService {
	return &IncomingMessageService{
		requestRepo: requestRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for ResponseReceived.
func (s *IncomingMessageService) WithClock(now func() time.Time) *IncomingMessageService {
	s.now = now
	return s
}

// Process dispatches on the message outcome. A success message for an unknown request
// is an error; a failure message for an unknown request is ignored.
func (s *IncomingMessageService) Process(ctx context.Context, key string, msg *domain.IncomingMessage) error {
	if msg.IsSuccess() {
		return s.processResponse(ctx, key, msg)
	}
	return s.processFailure(ctx, key, msg)
}

func (s *IncomingMessageService) processResponse(ctx context.Context, key string, msg *domain.IncomingMessage) error {
	id, err := parseKey(key)
	if err != nil {
		return err
	}

	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return domain.NewRequestNotFoundError(key)
		}
		return fmt.Errorf("load validation request %d: %w", id, err)
	}

	previous := req.Status
	if inOrder := req.ApplyResponse(msg, s.now()); !inOrder {
		s.logOutOfOrder(req, msg)
	}

	if _, err := s.requestRepo.Save(ctx, req); err != nil {
		return fmt.Errorf("save validation request %d: %w", id, err)
	}

	s.logger.Debug("validation response applied",
		"request_id", id,
		"from", previous,
		"to", req.Status,
	)
	return nil
}

func (s *IncomingMessageService) processFailure(ctx context.Context, key string, msg *domain.IncomingMessage) error {
	id, err := parseKey(key)
	if err != nil {
		return err
	}

	req, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			s.logger.Debug("failure message for unknown request ignored", "request_id", id)
			return nil
		}
		return fmt.Errorf("load validation request %d: %w", id, err)
	}

	previous := req.Status
	if inOrder := req.ApplyFailure(msg, s.now()); !inOrder {
		s.logOutOfOrder(req, msg)
	}

	if _, err := s.requestRepo.Save(ctx, req); err != nil {
		return fmt.Errorf("save validation request %d: %w", id, err)
	}

	s.logger.Debug("validation failure applied",
		"request_id", id,
		"from", previous,
		"to", req.Status,
		"retries", req.Retries,
	)
	return nil
}

func (s *IncomingMessageService) logOutOfOrder(req *domain.ValidationRequest, msg *domain.IncomingMessage) {
	s.logger.Info("out-of-order message ignored",
		"request_id", req.ID,
		"status", req.Status,
		"message_status", msg.Status,
	)
}
