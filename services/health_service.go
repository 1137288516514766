package services

import (
	"context"

	"gorm.io/gorm"
)

type HealthService struct {
	DB *gorm.DB
}

func NewHealthService(db *gorm.DB) *HealthService {
	return &HealthService{DB: db}
}

func (s *HealthService) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
