package services

import (
	"context"
	"log"
	"strings"

	"hotel-management/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	if err := s.DB.WithContext(ctx).Order("payment_id ASC").Find(&payments).Error; err != nil {
		log.Printf("❌ failed to list payments: %v", err)
		return nil, err
	}
	return payments, nil
}

// Create records the payment as given. booking_id is not checked; a missing
// transaction id is replaced by a generated one.
func (s *PaymentService) Create(ctx context.Context, payment *models.Payment) error {
	payment.TransactionID = strings.TrimSpace(payment.TransactionID)
	if payment.TransactionID == "" {
		payment.TransactionID = uuid.NewString()
	}
	return s.DB.WithContext(ctx).Create(payment).Error
}
