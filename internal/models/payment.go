package models

import "time"

// Payment represents a recorded instance of money paid against a bill.
// Payments are listed most-recent-first by PaymentDate; "last payment"
// means the first element of that ordering.
type Payment struct {
	Base
	BillID      string    `gorm:"type:uuid;not null;index" json:"bill_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	PaymentDate time.Time `gorm:"not null" json:"payment_date"`
	Notes       string    `json:"notes"`
}
