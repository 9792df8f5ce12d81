package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"billtrack/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username/email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	n := nextID()
	return CreateTestUserWithName(t, db, fmt.Sprintf("user%d", n))
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Email:    username + "@test.com",
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: userID,
		Name:   fmt.Sprintf("Test Category %d", nextID()),
		Color:  models.DefaultCategoryColor,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestBill creates a bill with the given recurrence configuration.
func CreateTestBill(t *testing.T, db *gorm.DB, userID string, recurrenceType models.RecurrenceType, recurrenceDays int, startDate *time.Time) *models.Bill {
	t.Helper()

	bill := &models.Bill{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Bill %d", nextID()),
		Amount:         50.00,
		RecurrenceType: recurrenceType,
		RecurrenceDays: recurrenceDays,
		StartDate:      startDate,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("failed to create test bill: %v", err)
	}
	return bill
}

// CreateTestPayment creates a payment against a bill on the given date.
func CreateTestPayment(t *testing.T, db *gorm.DB, billID string, paymentDate time.Time) *models.Payment {
	t.Helper()

	payment := &models.Payment{
		BillID:      billID,
		Amount:      50.00,
		PaymentDate: paymentDate,
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}
