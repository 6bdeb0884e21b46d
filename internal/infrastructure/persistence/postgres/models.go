package postgres

import (
	"time"
)

// ValidationRequestModel mirrors a row of validation_requests.
type ValidationRequestModel struct {
	ID               int64
	Status           string
	ValidOn          *time.Time
	FailReason       *string
	ResponseReceived *time.Time
	Retries          int
}
