package models

// Room maps to the legacy "Room" table. RoomNumber is nullable and unique when set.
type Room struct {
	ID                 uint    `gorm:"primaryKey;autoIncrement;column:room_id" json:"room_id"`
	RoomNumber         *string `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"room_number"`
	RoomType           string  `gorm:"column:room_type;size:100" json:"room_type"`
	PricePerNight      float64 `gorm:"column:price_per_night;type:decimal(10,2)" json:"price_per_night"`
	AvailabilityStatus string  `gorm:"column:availability_status;size:64;default:Available" json:"availability_status"`
}

func (Room) TableName() string { return "Room" }
