package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "billtrack/internal/errors"
	"billtrack/internal/models"
	"billtrack/internal/pagination"
	"billtrack/internal/schedule"
)

// upcomingWindowDays is the look-ahead used for the upcoming_bills stat.
const upcomingWindowDays = 7

// billService handles bill and payment business logic. Due dates, paid
// state, status and display labels are computed per request from the
// recurrence configuration and payment history; none of them are stored.
type billService struct {
	db          *gorm.DB
	loc         *time.Location
	graceDays   int
	maxInterval int
	now         func() time.Time
}

// NewBillService creates a new BillServicer. All calendar math uses loc;
// graceDays is the window within which a recurring bill still counts as
// paid, maxInterval bounds every-N-days bills.
func NewBillService(db *gorm.DB, loc *time.Location, graceDays, maxInterval int) BillServicer {
	return &billService{
		db:          db,
		loc:         loc,
		graceDays:   graceDays,
		maxInterval: maxInterval,
		now:         time.Now,
	}
}

// CreateBill creates a new bill after validating its recurrence configuration.
func (s *billService) CreateBill(userID, name string, amount float64, recurrenceType models.RecurrenceType, recurrenceDays int, startDate *time.Time, categoryID *string, notes string) (*models.Bill, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if err := s.validateRecurrence(recurrenceType, recurrenceDays, startDate); err != nil {
		return nil, err
	}
	if categoryID != nil && *categoryID == "" {
		categoryID = nil
	}
	if categoryID != nil {
		if err := s.checkCategory(userID, *categoryID); err != nil {
			return nil, err
		}
	}

	bill := &models.Bill{
		UserID:         userID,
		Name:           name,
		Amount:         amount,
		RecurrenceType: recurrenceType,
		RecurrenceDays: recurrenceDays,
		StartDate:      startDate,
		CategoryID:     categoryID,
		Notes:          notes,
	}

	if err := s.db.Create(bill).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.enrich(bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// GetUserBills retrieves a paginated list of bills for a user, each with
// computed due-date, paid state, status and labels.
func (s *billService) GetUserBills(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Bill], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Bill{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var bills []models.Bill
	if err := base.Scopes(pagination.Paginate(page)).
		Preload("Category").
		Order("created_at DESC").
		Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for i := range bills {
		if err := s.enrich(&bills[i]); err != nil {
			return nil, err
		}
	}

	result := pagination.NewPageResponse(bills, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetBillByID retrieves a bill by ID for a specific user.
func (s *billService) GetBillByID(userID, billID string) (*models.Bill, error) {
	var bill models.Bill
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", billID, userID).
		First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.enrich(&bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// UpdateBill replaces a bill's editable fields after re-validating the
// recurrence configuration.
func (s *billService) UpdateBill(userID, billID, name string, amount float64, recurrenceType models.RecurrenceType, recurrenceDays int, startDate *time.Time, categoryID *string, notes string) (*models.Bill, error) {
	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bill name is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if err := s.validateRecurrence(recurrenceType, recurrenceDays, startDate); err != nil {
		return nil, err
	}
	if categoryID != nil && *categoryID == "" {
		categoryID = nil
	}
	if categoryID != nil {
		if err := s.checkCategory(userID, *categoryID); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{
		"name":            name,
		"amount":          amount,
		"recurrence_type": recurrenceType,
		"recurrence_days": recurrenceDays,
		"start_date":      startDate,
		"category_id":     categoryID,
		"notes":           notes,
	}
	if err := s.db.Model(bill).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetBillByID(userID, billID)
}

// DeleteBill deletes a bill and its payments.
func (s *billService) DeleteBill(userID, billID string) error {
	var bill models.Bill
	if err := s.db.Where("id = ? AND user_id = ?", billID, userID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBillNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", billID).Delete(&models.Payment{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&bill).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// CreatePayment records a payment against a bill. When paymentDate is nil it
// defaults to the bill's current next due date, or to now for bills without
// one. The stored instant is normalized to the application timezone.
func (s *billService) CreatePayment(userID, billID string, amount float64, paymentDate *time.Time, notes string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	bill, err := s.GetBillByID(userID, billID)
	if err != nil {
		return nil, err
	}

	var when time.Time
	switch {
	case paymentDate != nil:
		when = paymentDate.In(s.loc)
	case bill.NextDueDate != nil:
		when = *bill.NextDueDate
	default:
		when = s.now().In(s.loc)
	}

	payment := &models.Payment{
		BillID:      billID,
		Amount:      amount,
		PaymentDate: when,
		Notes:       notes,
	}

	if err := s.db.Create(payment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payment, nil
}

// GetBillPayments retrieves a bill's payments, most recent first.
func (s *billService) GetBillPayments(userID, billID string) ([]models.Payment, error) {
	if _, err := s.GetBillByID(userID, billID); err != nil {
		return nil, err
	}

	var payments []models.Payment
	if err := s.db.Where("bill_id = ?", billID).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return payments, nil
}

// DeletePayment deletes a payment after verifying the owning bill belongs to
// the user. Deleting the most recent payment rolls the bill's paid state and
// last paid date back automatically since both are computed.
func (s *billService) DeletePayment(userID, billID, paymentID string) error {
	var payment models.Payment
	if err := s.db.Joins("JOIN bills ON bills.id = payments.bill_id").
		Where("payments.id = ? AND payments.bill_id = ? AND bills.user_id = ?", paymentID, billID, userID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPaymentNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&payment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetStats computes aggregate statistics over a user's bills.
func (s *billService) GetStats(userID string) (*models.BillStats, error) {
	var bills []models.Bill
	if err := s.db.Where("user_id = ?", userID).Find(&bills).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats := &models.BillStats{TotalBills: len(bills)}
	now := s.now()
	upcomingCutoff := schedule.Midnight(now, s.loc).AddDate(0, 0, upcomingWindowDays)

	for i := range bills {
		bill := &bills[i]
		if err := s.enrich(bill); err != nil {
			return nil, err
		}

		stats.TotalAmount += bill.Amount
		if bill.IsPaid {
			stats.PaidBills++
			continue
		}
		stats.UnpaidBills++
		stats.DueAmount += bill.Amount
		if bill.NextDueDate != nil && !bill.NextDueDate.After(upcomingCutoff) {
			stats.UpcomingBills++
		}
	}

	return stats, nil
}

// enrich computes a bill's next due date, last paid date, paid state, status
// and display labels.
func (s *billService) enrich(bill *models.Bill) error {
	now := s.now()

	latest, err := s.latestPayment(bill.ID)
	if err != nil {
		return err
	}
	if latest != nil {
		// The due date being paid is PaymentDate; when the user actually
		// paid is CreatedAt, which is what last_paid_date reports.
		paidAt := latest.CreatedAt
		bill.LastPaidDate = &paidAt
	}

	switch bill.RecurrenceType {
	case models.RecurrenceNone:
		bill.NextDueDate = bill.StartDate
		bill.IsPaid = latest != nil

	case models.RecurrenceFixedDate, models.RecurrenceInterval:
		var nextDue time.Time
		if latest != nil {
			if bill.RecurrenceType == models.RecurrenceFixedDate {
				nextDue = schedule.NextFixedDateAfterPayment(bill.RecurrenceDays, latest.PaymentDate, s.loc)
			} else {
				nextDue = schedule.NextIntervalAfterPayment(bill.RecurrenceDays, latest.PaymentDate, s.loc)
			}
		} else {
			reference := bill.CreatedAt
			if bill.StartDate != nil {
				reference = *bill.StartDate
			}
			if bill.RecurrenceType == models.RecurrenceFixedDate {
				nextDue = schedule.NextFixedDate(bill.RecurrenceDays, reference, s.loc)
			} else {
				nextDue = schedule.NextInterval(reference, s.loc)
			}
		}
		bill.NextDueDate = &nextDue

		// A recurring bill counts as paid while its next due date sits at
		// least the grace window in the future.
		grace := time.Duration(s.graceDays) * 24 * time.Hour
		bill.IsPaid = nextDue.Sub(now) >= grace

	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("unknown recurrence_type: %s", bill.RecurrenceType))
	}

	bill.Status = string(schedule.Classify(bill.IsPaid, bill.NextDueDate, now, s.loc))
	bill.ScheduleLabel = schedule.ScheduleLabel(string(bill.RecurrenceType), bill.RecurrenceDays)
	bill.BadgeLabel = schedule.BadgeLabel(string(bill.RecurrenceType))
	return nil
}

// latestPayment returns the most recent payment for a bill by payment date,
// or nil when the bill has none.
func (s *billService) latestPayment(billID string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Where("bill_id = ?", billID).
		Order("payment_date DESC").
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &payment, nil
}

// validateRecurrence checks the recurrence_type / recurrence_days /
// start_date combination.
func (s *billService) validateRecurrence(recurrenceType models.RecurrenceType, recurrenceDays int, startDate *time.Time) error {
	switch recurrenceType {
	case models.RecurrenceNone:
		if startDate == nil {
			return apperrors.WithMessage(apperrors.ErrInvalidRecurrence, "start_date is required for one-time bills")
		}
	case models.RecurrenceFixedDate:
		if recurrenceDays < 1 || recurrenceDays > 31 {
			return apperrors.WithMessage(apperrors.ErrInvalidRecurrence, "recurrence_days must be between 1 and 31 for fixed_date bills")
		}
	case models.RecurrenceInterval:
		if recurrenceDays < 1 {
			return apperrors.WithMessage(apperrors.ErrInvalidRecurrence, "recurrence_days must be at least 1 for interval bills")
		}
		if recurrenceDays > s.maxInterval {
			return apperrors.WithMessage(apperrors.ErrInvalidRecurrence,
				fmt.Sprintf("recurrence_days cannot exceed %d for interval bills", s.maxInterval))
		}
		if startDate == nil {
			return apperrors.WithMessage(apperrors.ErrInvalidRecurrence, "start_date is required for interval bills")
		}
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidRecurrence, "recurrence_type must be none, fixed_date or interval")
	}
	return nil
}

// checkCategory verifies a category exists and belongs to the user.
func (s *billService) checkCategory(userID, categoryID string) error {
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}
