package booking

import (
	"errors"
	"fmt"
)

// Error codes returned by the booking engine. Handlers map them to HTTP
// statuses; conflict losers are reported as slot_unavailable since from the
// requester's perspective the slot simply became unavailable.
const (
	CodeValidation      = "validation_error"
	CodeUnauthorized    = "unauthorized"
	CodeNotFound        = "not_found"
	CodeSlotUnavailable = "slot_unavailable"
	CodeDailyLimit      = "daily_limit_reached"
	CodeStore           = "store_error"
)

// BookingError is a typed rejection with a stable code.
type BookingError struct {
	Code    string
	Message string
	Err     error // underlying cause, kept for logs, never shown to end users
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewUnauthorizedError(msg string) error {
	return &BookingError{Code: CodeUnauthorized, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func NewSlotUnavailableError(msg string) error {
	return &BookingError{Code: CodeSlotUnavailable, Message: msg}
}

func NewDailyLimitError(msg string) error {
	return &BookingError{Code: CodeDailyLimit, Message: msg}
}

func NewStoreError(err error) error {
	return &BookingError{Code: CodeStore, Message: "internal error", Err: err}
}

// CodeOf extracts the booking error code, or CodeStore for untyped errors.
func CodeOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeStore
}
