// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hotel-management/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle and the room availability side
// effects that go with it.
type BookingService struct {
	DB *gorm.DB

	// StrictStatus rejects an initial booking_status outside models.GetAllBookingStatuses.
	StrictStatus bool
}

func NewBookingService(db *gorm.DB, strictStatus bool) *BookingService {
	return &BookingService{DB: db, StrictStatus: strictStatus}
}

type CreateBookingInput struct {
	GuestID         uint
	RoomID          uint
	CheckInDate     string
	CheckOutDate    string
	TotalPrice      float64
	BookingStatus   string
	SpecialRequests string
}

// parseDate accepts "2006-01-02" or RFC3339 and keeps only the calendar day.
// An empty value means the column stays NULL.
func parseDate(field, value string) (*datatypes.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		t2, err2 := time.Parse(time.RFC3339, value)
		if err2 != nil {
			return nil, newValidationError(fmt.Sprintf("Invalid %s: %s", field, value))
		}
		t = time.Date(t2.Year(), t2.Month(), t2.Day(), 0, 0, 0, 0, time.UTC)
	}

	d := datatypes.Date(t)
	return &d, nil
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings := make([]models.Booking, 0)
	if err := s.DB.WithContext(ctx).Order("booking_id ASC").Find(&bookings).Error; err != nil {
		log.Printf("❌ failed to list bookings: %v", err)
		return nil, err
	}
	return bookings, nil
}

// Create inserts the booking and occupies its room in one transaction. The
// room is taken with a conditional update, so two concurrent bookings for the
// same room cannot both succeed.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	checkIn, err := parseDate("check_in_date", in.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out_date", in.CheckOutDate)
	if err != nil {
		return nil, err
	}
	if checkIn != nil && checkOut != nil && time.Time(*checkOut).Before(time.Time(*checkIn)) {
		return nil, newValidationError("check_out_date must not be before check_in_date")
	}

	status := models.BookingStatus(in.BookingStatus)
	if strings.TrimSpace(in.BookingStatus) == "" {
		status = models.BookingStatusConfirmed
	}
	if s.StrictStatus {
		if !status.IsValid() {
			return nil, newValidationError(fmt.Sprintf("Invalid booking status: %s", status))
		}
		if status.IsTerminal() {
			return nil, newValidationError(fmt.Sprintf("Booking cannot be created as %s", status))
		}
	}

	booking := &models.Booking{
		GuestID:         in.GuestID,
		RoomID:          in.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		TotalPrice:      in.TotalPrice,
		BookingStatus:   status.String(),
		SpecialRequests: in.SpecialRequests,
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if status.IsTerminal() {
			// a closed booking is a record only and does not hold the room
			return tx.Create(booking).Error
		}

		res := tx.Model(&models.Room{}).
			Where("room_id = ? AND availability_status = ?", in.RoomID, models.RoomStatusAvailable.String()).
			Update("availability_status", models.RoomStatusOccupied.String())
		if res.Error != nil {
			return fmt.Errorf("failed to occupy room %d: %w", in.RoomID, res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Room{}).Where("room_id = ?", in.RoomID).Count(&count).Error; err != nil {
				return fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
			}
			if count == 0 {
				return ErrRoomNotFound
			}
			return ErrRoomUnavailable
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		log.Printf("❌ BookingService.Create room_id=%d: %v", in.RoomID, txErr)
		return nil, txErr
	}

	log.Printf("✅ BookingService.Create booking_id=%d room_id=%d", booking.ID, booking.RoomID)
	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, id uint) error {
	return s.transition(ctx, id, models.BookingStatusCancelled)
}

func (s *BookingService) Complete(ctx context.Context, id uint) error {
	return s.transition(ctx, id, models.BookingStatusCompleted)
}

// transition moves a booking to a terminal status and releases its room.
// Repeating the same transition is a no-op; switching between the two
// terminal statuses is refused.
func (s *BookingService) transition(ctx context.Context, id uint, target models.BookingStatus) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", id).
			First(&booking).Error; err != nil {

			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("❌ BookingService lookup %d: %v", id, err)
			}
			return fmt.Errorf("%w: %v", ErrBookingNotFound, err)
		}

		current := models.BookingStatus(booking.BookingStatus)
		if current == target {
			return nil
		}
		if current.IsTerminal() {
			return &BookingClosedError{Status: current}
		}

		if err := tx.Model(&models.Booking{}).
			Where("booking_id = ?", id).
			Update("booking_status", target.String()).Error; err != nil {
			return fmt.Errorf("failed to update booking %d: %w", id, err)
		}

		released, err := releaseRoom(tx, booking.RoomID, id)
		if err != nil {
			return err
		}
		if !released {
			log.Printf("⚠️ booking %d %s, room %d left unchanged", id, target, booking.RoomID)
			return nil
		}
		log.Printf("✅ booking %d %s, room %d released", id, target, booking.RoomID)
		return nil
	})
}

// releaseRoom marks the room Available unless another active booking still
// holds it.
func releaseRoom(tx *gorm.DB, roomID, bookingID uint) (bool, error) {
	activeOthers := tx.Model(&models.Booking{}).
		Select("1").
		Where("room_id = ? AND booking_id <> ? AND booking_status NOT IN ?",
			roomID, bookingID, []string{models.BookingStatusCancelled.String(), models.BookingStatusCompleted.String()})

	res := tx.Model(&models.Room{}).
		Where("room_id = ?", roomID).
		Where("NOT EXISTS (?)", activeOthers).
		Update("availability_status", models.RoomStatusAvailable.String())
	if res.Error != nil {
		return false, fmt.Errorf("failed to release room %d: %w", roomID, res.Error)
	}
	return res.RowsAffected > 0, nil
}
