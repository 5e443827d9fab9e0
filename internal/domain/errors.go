package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyCity is returned when a lookup is attempted without a city name
var ErrEmptyCity = errors.New("city name cannot be empty")

// APIError is a non-2xx answer from the upstream weather API
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %s (Code: %d)", e.Message, e.Code)
}
