package services

import (
	"strconv"

	"github.com/DanielPopoola/validation-status-listener/internal/domain"
)

// parseKey reads a message key as a signed decimal id. Surrounding whitespace is rejected.
func parseKey(key string) (int64, error) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, domain.NewInvalidKeyError(key)
	}
	return id, nil
}
