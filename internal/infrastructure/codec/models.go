package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
)

type messageDTO struct {
	Status   string       `json:"status" validate:"required,oneof=OK ERROR FAILED"`
	Response *responseDTO `json:"response"`
	Error    *errorDTO    `json:"error"`
}

type responseDTO struct {
	Validity   *bool      `json:"validity"`
	ValidityOn *timestamp `json:"validityOn" validate:"required"`
}

type errorDTO struct {
	ErrorCode            *string `json:"errorCode" validate:"required"`
	ErrorMsg             *string `json:"errorMsg"`
	RejectReason         *string `json:"rejectReason"`
	ExternalResponseBody []byte  `json:"externalResponseBody"`
}

// Zone-less layouts emitted by producers that serialise local date-times. Seconds are
// omitted when they are zero.
var localDateTimes = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// timestamp accepts RFC 3339 or a zone-less local date-time, the latter read as UTC.
type timestamp struct {
	time.Time
}

func (t *timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}

	for _, layout := range localDateTimes {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

func (m *messageDTO) toDomain() *domain.IncomingMessage {
	msg := &domain.IncomingMessage{
		Status: domain.MessageStatus(m.Status),
	}

	if m.Response != nil {
		msg.Response = &domain.ExternalServiceResponse{
			Validity:   m.Response.Validity,
			ValidityOn: m.Response.ValidityOn.Time,
		}
	}

	if m.Error != nil {
		msg.Error = &domain.ExternalServiceError{
			ErrorCode:            *m.Error.ErrorCode,
			ErrorMsg:             m.Error.ErrorMsg,
			RejectReason:         m.Error.RejectReason,
			ExternalResponseBody: m.Error.ExternalResponseBody,
		}
	}

	return msg
}
