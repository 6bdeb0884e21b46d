package domain

import "time"

// MessageStatus signals which payload variant of an IncomingMessage is populated
type MessageStatus string

const (
	MessageOK     MessageStatus = "OK"
	MessageError  MessageStatus = "ERROR"
	MessageFailed MessageStatus = "FAILED"
)

type IncomingMessage struct {
	Status   MessageStatus
	Response *ExternalServiceResponse
	Error    *ExternalServiceError
}

type ExternalServiceResponse struct {
	// nil means the external check could not decide
	Validity   *bool
	ValidityOn time.Time
}

type ExternalServiceError struct {
	ErrorCode            string
	ErrorMsg             *string
	RejectReason         *string
	ExternalResponseBody []byte
}

func (m *IncomingMessage) IsSuccess() bool {
	return m.Status == MessageOK
}

// Reason joins the error code and message. A nil receiver yields nil.
func (e *ExternalServiceError) Reason() *string {
	if e == nil {
		return nil
	}
	reason := e.ErrorCode
	if e.ErrorMsg != nil {
		reason += *e.ErrorMsg
	}
	return &reason
}
