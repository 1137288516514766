package models

// Guest maps to the legacy "Guest" table.
type Guest struct {
	ID      uint   `gorm:"primaryKey;autoIncrement;column:guest_id" json:"guest_id"`
	Name    string `gorm:"column:name;size:255;not null" json:"name"`
	Email   string `gorm:"column:email;size:255;not null" json:"email"`
	Phone   string `gorm:"column:phone;size:50" json:"phone"`
	Address string `gorm:"column:address;type:text" json:"address"`
}

func (Guest) TableName() string { return "Guest" }
