package code

import (
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: dependency unavailable.
	StatusServiceUnavailable = 503
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request parameter binding error.
	ErrBind
	// ErrSessionInvalid - 401: missing or invalid session.
	ErrSessionInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Officer error codes (101xxx).
const (
	// ErrOfficerNotFound - 404: officer does not exist.
	ErrOfficerNotFound int = iota + 101000
	// ErrPasswordIncorrect - 401: wrong credentials.
	ErrPasswordIncorrect
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
	// ErrForeignKeyViolation - 400: record is still referenced.
	ErrForeignKeyViolation
	// ErrConnectionUnavailable - 503: database unreachable.
	ErrConnectionUnavailable
)

// pgForeignKeyViolation is the PostgreSQL SQLSTATE for foreign_key_violation.
const pgForeignKeyViolation = "23503"

// Error carries an error kind alongside the underlying cause, so the request
// boundary can map kinds to user-facing messages uniformly.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return GetMessage(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps an underlying error with an error kind.
func NewError(code int, err error) *Error {
	return &Error{Code: code, Err: err}
}

// Kind extracts the error kind from an error chain. A nil error is
// ErrSuccess; an unclassified error is ErrUnknown.
func Kind(err error) int {
	if err == nil {
		return ErrSuccess
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// WrapDBError classifies a database error and wraps it with its kind.
// Foreign-key violations are detected via the PostgreSQL SQLSTATE, with a
// message fallback that also covers sqlite's constraint errors. Connection
// failures become ErrConnectionUnavailable so pages can show the
// database-down flash instead of a generic error.
func WrapDBError(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewError(ErrRecordNotFound, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return NewError(ErrForeignKeyViolation, err)
	}
	if strings.Contains(strings.ToLower(err.Error()), "foreign key constraint") {
		return NewError(ErrForeignKeyViolation, err)
	}
	if isConnectionError(err) {
		return NewError(ErrConnectionUnavailable, err)
	}
	return NewError(ErrDatabase, err)
}

// isConnectionError reports whether an error means the database could not
// be reached, as opposed to rejecting the statement. pgx wraps the dial
// failure in a ConnectError carrying a *net.OpError; the message checks
// cover drivers that flatten the chain into plain text.
func isConnectionError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "failed to connect") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset")
}
