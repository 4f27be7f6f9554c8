package code

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKind(t *testing.T) {
	assert.Equal(t, ErrSuccess, Kind(nil))
	assert.Equal(t, ErrUnknown, Kind(errors.New("plain")))
	assert.Equal(t, ErrPasswordIncorrect, Kind(NewError(ErrPasswordIncorrect, nil)))

	wrapped := fmt.Errorf("outer: %w", NewError(ErrRecordNotFound, gorm.ErrRecordNotFound))
	assert.Equal(t, ErrRecordNotFound, Kind(wrapped))
}

func TestWrapDBErrorNil(t *testing.T) {
	assert.NoError(t, WrapDBError(nil))
}

func TestWrapDBErrorRecordNotFound(t *testing.T) {
	err := WrapDBError(gorm.ErrRecordNotFound)
	assert.Equal(t, ErrRecordNotFound, Kind(err))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestWrapDBErrorPostgresForeignKey(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key"}
	assert.Equal(t, ErrForeignKeyViolation, Kind(WrapDBError(pgErr)))
}

func TestWrapDBErrorForeignKeyMessageFallback(t *testing.T) {
	err := WrapDBError(errors.New("FOREIGN KEY constraint failed"))
	assert.Equal(t, ErrForeignKeyViolation, Kind(err))
}

func TestWrapDBErrorConnectionRefused(t *testing.T) {
	// the dial failure shape pgx produces for an unreachable host
	dialErr := &net.OpError{
		Op:  "dial",
		Net: "tcp",
		Err: syscall.ECONNREFUSED,
	}
	err := WrapDBError(fmt.Errorf("failed to connect to `host=127.0.0.1`: %w", dialErr))
	assert.Equal(t, ErrConnectionUnavailable, Kind(err))
	assert.Equal(t, "Database connection failed!", GetMessage(Kind(err)))
}

func TestWrapDBErrorConnectionMessageFallback(t *testing.T) {
	assert.Equal(t, ErrConnectionUnavailable,
		Kind(WrapDBError(errors.New("failed to connect to `host=db user=postgres database=criminal_dbms`"))))
	assert.Equal(t, ErrConnectionUnavailable,
		Kind(WrapDBError(errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))))
}

func TestWrapDBErrorGeneric(t *testing.T) {
	assert.Equal(t, ErrDatabase, Kind(WrapDBError(errors.New("syntax error at or near \"SELEC\""))))
}

func TestWrapDBErrorAlreadyClassified(t *testing.T) {
	classified := NewError(ErrForeignKeyViolation, errors.New("fk"))
	assert.Same(t, classified, WrapDBError(classified).(*Error))
}

func TestErrorMessageFallback(t *testing.T) {
	withCause := NewError(ErrDatabase, errors.New("underlying"))
	assert.Equal(t, "underlying", withCause.Error())

	withoutCause := NewError(ErrPasswordIncorrect, nil)
	assert.Equal(t, GetMessage(ErrPasswordIncorrect), withoutCause.Error())
}

func TestGetMessageAndStatus(t *testing.T) {
	assert.Equal(t, "Invalid username or password!", GetMessage(ErrPasswordIncorrect))
	assert.Equal(t, "Database connection failed!", GetMessage(ErrConnectionUnavailable))
	assert.Equal(t, StatusUnauthorized, GetStatus(ErrPasswordIncorrect))
	assert.Equal(t, StatusServiceUnavailable, GetStatus(ErrConnectionUnavailable))

	// unknown codes fall back to the generic error
	assert.Equal(t, GetMessage(ErrUnknown), GetMessage(999999))
	assert.Equal(t, StatusInternalServerError, GetStatus(999999))
}
