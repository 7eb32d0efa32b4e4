package api

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not_found")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error (%d): %s", e.StatusCode, e.Message)
}

// Is lets callers test a 404 with errors.Is(err, ErrNotFound).
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}
