package services

import (
	"context"
	"log"
	"strings"

	"hotel-management/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) List(ctx context.Context) ([]models.Guest, error) {
	guests := make([]models.Guest, 0)
	if err := s.DB.WithContext(ctx).Order("guest_id ASC").Find(&guests).Error; err != nil {
		log.Printf("❌ failed to list guests: %v", err)
		return nil, err
	}
	return guests, nil
}

// Create inserts the guest and fills guest.ID. Name and email are required.
func (s *GuestService) Create(ctx context.Context, guest *models.Guest) error {
	guest.Name = strings.TrimSpace(guest.Name)
	guest.Email = strings.TrimSpace(guest.Email)
	if guest.Name == "" || guest.Email == "" {
		return newValidationError("Name and email required")
	}

	if err := s.DB.WithContext(ctx).Create(guest).Error; err != nil {
		log.Printf("❌ GuestService.Create error: %v", err)
		return err
	}

	log.Printf("✅ GuestService.Create guest_id=%d", guest.ID)
	return nil
}

// Delete removes the row. Bookings referencing the guest are left alone and a
// missing id is not an error.
func (s *GuestService) Delete(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Where("guest_id = ?", id).Delete(&models.Guest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		log.Printf("⚠️ GuestService.Delete: no guest with id %d", id)
	}
	return nil
}
