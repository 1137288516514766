package services

import (
	"errors"

	"hotel-management/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room is not available")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
)

// ValidationError carries a message that is safe to return to the client as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// BookingClosedError is returned when a terminal booking is asked to move to
// the other terminal status.
type BookingClosedError struct {
	Status models.BookingStatus
}

func (e *BookingClosedError) Error() string {
	return "booking is already " + e.Status.String()
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var merr *mysql.MySQLError
	return errors.As(err, &merr) && merr.Number == 1062
}
