package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/DanielPopoola/validation-status-listener/internal/application"
	"github.com/DanielPopoola/validation-status-listener/internal/interfaces/rest"
)

const (
	SignatureHeader = "X-EpochQ-Signature"
	signaturePrefix = "sha256="

	// MetadataKey is the delivery metadata entry carrying the validation request id.
	MetadataKey = "key"
)

// Delivery is the webhook body pushed by the queue broker.
type Delivery struct {
	ID            string            `json:"id"`
	Body          string            `json:"body"`
	ReceiptHandle string            `json:"receipt_handle"`
	Namespace     string            `json:"namespace"`
	Queue         string            `json:"queue"`
	PublishedAt   int64             `json:"published_at"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type deliveryAck struct {
	ID       string `json:"id"`
	Outcome  string `json:"outcome"`
	ErrorMsg string `json:"error,omitempty"`
}

const (
	outcomeProcessed = "processed"
	outcomeRejected  = "rejected"
)

// PostDelivery acknowledges a broker delivery with 200 unless the failure is worth a
// redelivery, in which case it answers 503 and the broker retries.
func (h *Handlers) PostDelivery(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("read body: %w", err)), h.logger)
		return
	}

	if h.signingSecret != nil && !h.validSignature(raw, r.Header.Get(SignatureHeader)) {
		h.logger.Warn("delivery signature mismatch", "remote_addr", r.RemoteAddr)
		rest.WriteError(w, application.NewInvalidSignatureError(), h.logger)
		return
	}

	delivery, payload, err := parseDelivery(raw)
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}
	key := delivery.Metadata[MetadataKey]

	err = h.listener.Receive(r.Context(), key, string(payload))
	switch {
	case err == nil:
		rest.WriteJSON(w, http.StatusOK, rest.SuccessResponse{
			Success: true,
			Data:    deliveryAck{ID: delivery.ID, Outcome: outcomeProcessed},
		}, h.logger)

	case application.IsRetryable(err):
		h.logger.Warn("delivery failed, requesting redelivery",
			"delivery_id", delivery.ID,
			"key", key,
			"category", application.CategorizeError(err),
			"error", err,
		)
		rest.WriteError(w, application.NewUnavailableError(err), h.logger)

	default:
		h.logger.Warn("delivery rejected",
			"delivery_id", delivery.ID,
			"key", key,
			"code", application.ToErrorCode(err),
			"error", err,
		)
		rest.WriteJSON(w, http.StatusOK, rest.SuccessResponse{
			Success: true,
			Data:    deliveryAck{ID: delivery.ID, Outcome: outcomeRejected, ErrorMsg: err.Error()},
		}, h.logger)
	}
}

func (h *Handlers) validSignature(body []byte, header string) bool {
	sig, ok := strings.CutPrefix(header, signaturePrefix)
	if !ok {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, h.signingSecret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

func parseDelivery(raw []byte) (*Delivery, []byte, error) {
	var d Delivery
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, nil, fmt.Errorf("decode delivery: %w", err)
	}
	if d.ID == "" {
		return nil, nil, errors.New("delivery id is required")
	}
	if _, ok := d.Metadata[MetadataKey]; !ok {
		return nil, nil, fmt.Errorf("delivery %s has no %q metadata", d.ID, MetadataKey)
	}

	payload, err := base64.StdEncoding.DecodeString(d.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("delivery %s body is not base64: %w", d.ID, err)
	}
	return &d, payload, nil
}
