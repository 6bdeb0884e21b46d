package queue

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
	"github.com/DanielPopoola/validation-status-listener/internal/infrastructure/codec"
)

// MessageProcessor applies a decoded message to the request named by key.
type MessageProcessor interface {
	Process(ctx context.Context, key string, msg *domain.IncomingMessage) error
}

// Listener is the entry point for messages taken off the bus. Transports hand it
// the record key and the raw payload.
type Listener struct {
	decoder   *codec.Decoder
	processor MessageProcessor
	logger    *slog.Logger
}

func NewListener(decoder *codec.Decoder, processor MessageProcessor, logger *slog.Logger) *Listener {
	return &Listener{
		decoder:   decoder,
		processor: processor,
		logger:    logger,
	}
}

// Receive decodes payload and forwards it to the processor. A payload that cannot be
// decoded is logged and dropped; processor errors are returned unchanged.
func (l *Listener) Receive(ctx context.Context, key, payload string) error {
	msg, err := l.decoder.Decode([]byte(payload))
	if err != nil {
		l.logger.Warn("dropping undecodable message",
			"key", key,
			"error", err,
		)
		return nil
	}

	return l.processor.Process(ctx, key, msg)
}
