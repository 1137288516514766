package models

import (
	"gorm.io/datatypes"
)

// Booking maps to the legacy "Booking" table. GuestID and RoomID carry no
// foreign key constraints.
type Booking struct {
	ID              uint            `gorm:"primaryKey;autoIncrement;column:booking_id" json:"booking_id"`
	GuestID         uint            `gorm:"column:guest_id;index" json:"guest_id"`
	RoomID          uint            `gorm:"column:room_id;index" json:"room_id"`
	CheckInDate     *datatypes.Date `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate    *datatypes.Date `gorm:"column:check_out_date" json:"check_out_date"`
	TotalPrice      float64         `gorm:"column:total_price;type:decimal(10,2)" json:"total_price"`
	BookingStatus   string          `gorm:"column:booking_status;size:64" json:"booking_status"`
	SpecialRequests string          `gorm:"column:special_requests;type:text" json:"special_requests"`
}

func (Booking) TableName() string { return "Booking" }
