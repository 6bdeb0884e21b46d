package testhelpers

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// DiscardLogger returns a logger for tests that do not inspect log output
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// OKPayload builds the JSON document of a successful validation message
func OKPayload(t *testing.T, validity *bool, validityOn time.Time) string {
	t.Helper()
	return marshal(t, map[string]any{
		"status": "OK",
		"response": map[string]any{
			"validity":   validity,
			"validityOn": validityOn.Format(time.RFC3339Nano),
		},
		"error": nil,
	})
}

// FailurePayload builds the JSON document of an ERROR or FAILED validation message
func FailurePayload(t *testing.T, status, errorCode, errorMsg string) string {
	t.Helper()
	return marshal(t, map[string]any{
		"status":   status,
		"response": nil,
		"error": map[string]any{
			"errorCode":            errorCode,
			"errorMsg":             errorMsg,
			"rejectReason":         nil,
			"externalResponseBody": []byte(`{}`),
		},
	})
}

func marshal(t *testing.T, v any) string {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
