package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound     = errors.New("requested resource not found")
	ErrUnauthorized = errors.New("unauthorized access")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("resource conflict") // e.g., email already registered
	ErrValidation   = errors.New("validation failed")
)

// MsgServerError is the only message a client ever sees for a 500.
const MsgServerError = "Server error"

// Error pairs one of the sentinel kinds above with the message shown to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewError creates an error that maps to kind's status and carries message to the client.
func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrConflict) {
		return http.StatusConflict
	}

	// A unique violation that escaped repository mapping is still a conflict.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// ClientMessage returns the message safe to send for err. Anything that maps to a
// 5xx, or that was not built with NewError, gets the generic server message.
func ClientMessage(err error) string {
	if HTTPStatusFromError(err) >= http.StatusInternalServerError {
		return MsgServerError
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrConflict):
		return "Conflict"
	}
	return "Bad request"
}
