package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB

	// StrictStatus rejects availability values outside models.GetAllRoomStatuses.
	StrictStatus bool
}

func NewRoomService(db *gorm.DB, strictStatus bool) *RoomService {
	return &RoomService{DB: db, StrictStatus: strictStatus}
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	rooms := make([]models.Room, 0)
	if err := s.DB.WithContext(ctx).Order("room_id ASC").Find(&rooms).Error; err != nil {
		log.Printf("❌ failed to list rooms: %v", err)
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	if room.RoomNumber != nil {
		number := strings.TrimSpace(*room.RoomNumber)
		if number == "" {
			room.RoomNumber = nil
		} else {
			room.RoomNumber = &number
		}
	}

	room.AvailabilityStatus = strings.TrimSpace(room.AvailabilityStatus)
	if room.AvailabilityStatus == "" {
		room.AvailabilityStatus = models.RoomStatusAvailable.String()
	}
	if err := s.checkStatus(room.AvailabilityStatus); err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).Create(room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateRoomNumber
		}
		return err
	}
	return nil
}

// UpdateStatus stores status verbatim unless StrictStatus is set. A missing
// room is not reported, matching the delete endpoints.
func (s *RoomService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if err := s.checkStatus(status); err != nil {
		return err
	}

	err := s.DB.WithContext(ctx).
		Model(&models.Room{}).
		Where("room_id = ?", id).
		Update("availability_status", status).Error
	if err != nil {
		log.Printf("❌ Update Error for Room %d: %v", id, err)
		return err
	}
	return nil
}

func (s *RoomService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Where("room_id = ?", id).Delete(&models.Room{}).Error
}

func (s *RoomService) checkStatus(status string) error {
	if s.StrictStatus && !models.RoomStatus(status).IsValid() {
		return newValidationError(fmt.Sprintf("Invalid room status: %s", status))
	}
	return nil
}
