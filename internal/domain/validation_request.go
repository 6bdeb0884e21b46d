// Package domain encodes a validation request and the status transitions driven by
// incoming validation messages
package domain

import (
	"time"
)

// ValidationStatus represents the current state of a validation request
type ValidationStatus string

const (
	StatusWaiting          ValidationStatus = "WAITING"
	StatusValid            ValidationStatus = "VALID"
	StatusInvalid          ValidationStatus = "INVALID"
	StatusFailedToValidate ValidationStatus = "FAILED_TO_VALIDATE"
	StatusFailed           ValidationStatus = "FAILED"
)

// ParseValidationStatus maps a stored status string back to a ValidationStatus.
func ParseValidationStatus(s string) (ValidationStatus, error) {
	switch status := ValidationStatus(s); status {
	case StatusWaiting, StatusValid, StatusInvalid, StatusFailedToValidate, StatusFailed:
		return status, nil
	}
	return "", NewInvalidStatusError(s)
}

type ValidationRequest struct {
	ID     int64
	Status ValidationStatus

	ValidOn          *time.Time
	FailReason       *string
	ResponseReceived *time.Time

	Retries int
}

func NewValidationRequest(id int64) *ValidationRequest {
	return &ValidationRequest{
		ID:     id,
		Status: StatusWaiting,
	}
}

// IsResolved reports whether an external determination has already been recorded.
func (r *ValidationRequest) IsResolved() bool {
	switch r.Status {
	case StatusValid, StatusInvalid, StatusFailedToValidate:
		return true
	default:
		return false
	}
}

// ApplyResponse records a successful validation message. The status only moves when the
// request is WAITING or FAILED, but the receipt time and ValidOn are overwritten either way.
// It returns false when the message arrived out of order.
func (r *ValidationRequest) ApplyResponse(msg *IncomingMessage, receivedAt time.Time) bool {
	next, inOrder := NextStatus(r.Status, msg)
	r.Status = next
	r.ResponseReceived = &receivedAt
	r.ValidOn = nil
	if msg.Response != nil {
		validOn := msg.Response.ValidityOn
		r.ValidOn = &validOn
	}
	return inOrder
}

// ApplyFailure records a failed validation attempt. Retries and FailReason change even
// when the status does not.
func (r *ValidationRequest) ApplyFailure(msg *IncomingMessage, receivedAt time.Time) bool {
	next, inOrder := NextStatus(r.Status, msg)
	r.Status = next
	r.ResponseReceived = &receivedAt
	r.Retries++
	r.FailReason = msg.Error.Reason()
	return inOrder
}

// NextStatus is the transition function over (current status, message outcome).
// The boolean is false when the message is out of order and the status stays put.
func NextStatus(current ValidationStatus, msg *IncomingMessage) (ValidationStatus, bool) {
	if msg.IsSuccess() {
		switch current {
		case StatusWaiting, StatusFailed:
			return ComputeValidity(msg.Response), true
		default:
			return current, false
		}
	}

	switch current {
	case StatusWaiting:
		return StatusFailed, true
	default:
		return current, false
	}
}

// ComputeValidity maps the optional validity flag to a resolved status.
func ComputeValidity(resp *ExternalServiceResponse) ValidationStatus {
	if resp == nil || resp.Validity == nil {
		return StatusFailedToValidate
	}
	if *resp.Validity {
		return StatusValid
	}
	return StatusInvalid
}
