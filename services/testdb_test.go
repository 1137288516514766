package services

import (
	"context"
	"testing"

	"hotel-management/config"
	"hotel-management/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the production
// schema. A single connection keeps every statement on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         config.NewGormLogger("silent"),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number, status string) models.Room {
	t.Helper()
	room := models.Room{RoomNumber: &number, RoomType: "Standard", PricePerNight: 1000, AvailabilityStatus: status}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func roomStatus(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, "room_id = ?", id).Error)
	return room.AvailabilityStatus
}

func bookingStatus(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var booking models.Booking
	require.NoError(t, db.First(&booking, "booking_id = ?", id).Error)
	return booking.BookingStatus
}

var ctx = context.Background()
