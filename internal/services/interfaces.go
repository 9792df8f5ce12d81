package services

import (
	"time"

	"billtrack/internal/models"
	"billtrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// BillServicer defines the contract for bill-related business logic.
type BillServicer interface {
	CreateBill(userID, name string, amount float64, recurrenceType models.RecurrenceType, recurrenceDays int, startDate *time.Time, categoryID *string, notes string) (*models.Bill, error)
	GetUserBills(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Bill], error)
	GetBillByID(userID, billID string) (*models.Bill, error)
	UpdateBill(userID, billID, name string, amount float64, recurrenceType models.RecurrenceType, recurrenceDays int, startDate *time.Time, categoryID *string, notes string) (*models.Bill, error)
	DeleteBill(userID, billID string) error

	CreatePayment(userID, billID string, amount float64, paymentDate *time.Time, notes string) (*models.Payment, error)
	GetBillPayments(userID, billID string) ([]models.Payment, error)
	DeletePayment(userID, billID, paymentID string) error

	GetStats(userID string) (*models.BillStats, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name, color string) (*models.Category, error)
	GetUserCategories(userID string) ([]models.Category, error)
	DeleteCategory(userID, categoryID string) error
	CreateDefaults(userID string) error
}
