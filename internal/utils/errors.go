package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors shared by the engine, the CLI and the HTTP front end.
var (
	ErrLoadFailed          = errors.New("load_failed")
	ErrMutationFailed      = errors.New("mutation_failed")
	ErrValidation          = errors.New("validation_error")
	ErrOperationInProgress = errors.New("operation_in_progress")
	ErrNotFound            = errors.New("not_found")
	ErrUnitNotFound        = errors.New("unit_not_found")
	ErrPropertyNotFound    = errors.New("property_not_found")
)

// AppError carries an HTTP status and public message from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HandleAppError centralizes responding to AppErrors. Plain errors are
// classified by their sentinel.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
		return
	}

	switch {
	case errors.Is(err, ErrValidation):
		RespondErrorWithCode(w, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil, err)
	case errors.Is(err, ErrOperationInProgress):
		RespondErrorWithCode(w, http.StatusConflict, ErrCodeConflict, "Operation already in progress", nil, err)
	case errors.Is(err, ErrUnitNotFound), errors.Is(err, ErrPropertyNotFound), errors.Is(err, ErrNotFound):
		RespondErrorWithCode(w, http.StatusNotFound, ErrCodeNotFound, err.Error(), nil, err)
	case errors.Is(err, ErrLoadFailed), errors.Is(err, ErrMutationFailed):
		RespondErrorWithCode(w, http.StatusBadGateway, ErrCodeUpstream, err.Error(), nil, err)
	default:
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
