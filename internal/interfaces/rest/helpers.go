package rest

import (
	"strconv"
	"time"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type ValidationRequest struct {
	ID               string     `json:"id"`
	Status           string     `json:"status"`
	ValidOn          *time.Time `json:"validOn,omitempty"`
	FailReason       *string    `json:"failReason,omitempty"`
	ResponseReceived *time.Time `json:"responseReceived,omitempty"`
	Retries          int        `json:"retries"`
	Resolved         bool       `json:"resolved"`
}

func ToAPIValidationRequest(r *domain.ValidationRequest) ValidationRequest {
	return ValidationRequest{
		ID:               strconv.FormatInt(r.ID, 10),
		Status:           string(r.Status),
		ValidOn:          r.ValidOn,
		FailReason:       r.FailReason,
		ResponseReceived: r.ResponseReceived,
		Retries:          r.Retries,
		Resolved:         r.IsResolved(),
	}
}
