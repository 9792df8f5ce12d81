package models

import "time"

// RecurrenceType represents the schedule rule governing how a bill's due
// date advances.
type RecurrenceType string

const (
	// RecurrenceNone is a one-time bill; StartDate is its sole due date.
	RecurrenceNone RecurrenceType = "none"
	// RecurrenceFixedDate recurs monthly on a fixed calendar day (1-31).
	RecurrenceFixedDate RecurrenceType = "fixed_date"
	// RecurrenceInterval recurs every RecurrenceDays days from StartDate.
	RecurrenceInterval RecurrenceType = "interval"
)

// Bill represents a recurring or one-time payment obligation.
//
// NextDueDate, LastPaidDate, IsPaid, Status and the display labels are
// computed per request from the recurrence configuration and payment
// history; they are never stored.
type Bill struct {
	Base
	UserID         string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string         `gorm:"not null" json:"name"`
	Amount         float64        `gorm:"not null" json:"amount"`
	RecurrenceType RecurrenceType `gorm:"not null;default:none" json:"recurrence_type"`
	RecurrenceDays int            `json:"recurrence_days"`
	StartDate      *time.Time     `json:"start_date,omitempty"`
	CategoryID     *string        `gorm:"type:uuid" json:"category_id,omitempty"`
	Notes          string         `json:"notes"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Payments []Payment `gorm:"foreignKey:BillID" json:"payments,omitempty"`

	// Computed fields, populated by the bill service.
	IsPaid        bool       `gorm:"-" json:"is_paid"`
	NextDueDate   *time.Time `gorm:"-" json:"next_due_date,omitempty"`
	LastPaidDate  *time.Time `gorm:"-" json:"last_paid_date,omitempty"`
	Status        string     `gorm:"-" json:"status"`
	ScheduleLabel string     `gorm:"-" json:"schedule_label"`
	BadgeLabel    string     `gorm:"-" json:"badge_label"`
}

// BillStats represents aggregate bill statistics for a user.
type BillStats struct {
	TotalBills    int     `json:"total_bills"`
	TotalAmount   float64 `json:"total_amount"`
	DueAmount     float64 `json:"due_amount"`
	PaidBills     int     `json:"paid_bills"`
	UnpaidBills   int     `json:"unpaid_bills"`
	UpcomingBills int     `json:"upcoming_bills"`
}
