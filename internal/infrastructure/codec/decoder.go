// Package codec turns raw queue payloads into domain messages.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
	"github.com/go-playground/validator"
)

var ErrMalformedMessage = errors.New("malformed incoming message")

// Decoder is stateless after construction and safe for concurrent use.
// Build one at startup and share it.
type Decoder struct {
	validate *validator.Validate
}

func NewDecoder() *Decoder {
	return &Decoder{validate: validator.New()}
}

// Decode parses payload into an IncomingMessage. Every failure wraps ErrMalformedMessage.
func (d *Decoder) Decode(payload []byte) (*domain.IncomingMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))

	var dto messageDTO
	if err := dec.Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedMessage)
	}

	if err := d.validate.Struct(&dto); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	return dto.toDomain(), nil
}
