package models

// Payment maps to the legacy "Payment" table.
type Payment struct {
	ID            uint    `gorm:"primaryKey;autoIncrement;column:payment_id" json:"payment_id"`
	BookingID     uint    `gorm:"column:booking_id;index" json:"booking_id"`
	AmountPaid    float64 `gorm:"column:amount_paid;type:decimal(10,2)" json:"amount_paid"`
	PaymentMethod string  `gorm:"column:payment_method;size:50" json:"payment_method"`
	PaymentStatus string  `gorm:"column:payment_status;size:50" json:"payment_status"`
	TransactionID string  `gorm:"column:transaction_id;size:200" json:"transaction_id"`
}

func (Payment) TableName() string { return "Payment" }
