package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "billtrack/internal/errors"
	"billtrack/internal/models"
	"billtrack/internal/pagination"
	"billtrack/internal/schedule"
	"billtrack/internal/services"
)

// BillHandler handles bill-related requests.
type BillHandler struct {
	billService services.BillServicer
	loc         *time.Location
}

// NewBillHandler creates a new BillHandler. Date-only request fields are
// interpreted in loc.
func NewBillHandler(billService services.BillServicer, loc *time.Location) *BillHandler {
	return &BillHandler{billService: billService, loc: loc}
}

// BillRequest represents the request payload for creating or updating a bill.
type BillRequest struct {
	Name           string                `json:"name" binding:"required,min=1,max=100"`
	Amount         float64               `json:"amount" binding:"required,gt=0"`
	RecurrenceType models.RecurrenceType `json:"recurrence_type" binding:"required,recurrence_type"`
	RecurrenceDays int                   `json:"recurrence_days" binding:"omitempty,min=1"`
	StartDate      string                `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID     *string               `json:"category_id" binding:"omitempty,uuid"`
	Notes          string                `json:"notes" binding:"max=1000"`
}

// startDate resolves the optional date-only start_date field to an instant.
func (r *BillRequest) startDate(loc *time.Location) (*time.Time, error) {
	if r.StartDate == "" {
		return nil, nil
	}
	t, err := schedule.ParseLocalDate(r.StartDate, loc)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date must be a valid YYYY-MM-DD date")
	}
	return &t, nil
}

// CreateBill handles the creation of a new bill.
// @Summary     Create a bill
// @Description Create a new bill with a recurrence configuration
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BillRequest true "Bill details"
// @Success     201 {object} models.Bill "Bill created"
// @Failure     400 {object} ErrorResponse "Invalid input or recurrence configuration"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := req.startDate(h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.CreateBill(
		userID, req.Name, req.Amount, req.RecurrenceType, req.RecurrenceDays, startDate, req.CategoryID, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bill": bill})
}

// GetBills handles listing bills for the authenticated user.
// @Summary     Get bills
// @Description Get the authenticated user's bills with computed due dates and statuses
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} BillListResponse "Bills with total count"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [get]
func (h *BillHandler) GetBills(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.billService.GetUserBills(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bills": result.Data,
		"total": result.TotalItems,
	})
}

// GetBill handles retrieving a specific bill.
// @Summary     Get bill by ID
// @Description Get a specific bill by ID with computed due date and status
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bill ID"
// @Success     200 {object} models.Bill "Bill details"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.GetBillByID(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// UpdateBill handles updating an existing bill.
// @Summary     Update bill
// @Description Update an existing bill's details and recurrence configuration
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string      true "Bill ID"
// @Param       request body BillRequest true "Updated bill details"
// @Success     200 {object} models.Bill "Updated bill"
// @Failure     400 {object} ErrorResponse "Invalid input or bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [put]
func (h *BillHandler) UpdateBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := req.startDate(h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	bill, err := h.billService.UpdateBill(
		userID, billID, req.Name, req.Amount, req.RecurrenceType, req.RecurrenceDays, startDate, req.CategoryID, req.Notes,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bill": bill})
}

// DeleteBill handles deleting a bill.
// @Summary     Delete bill
// @Description Delete a bill and its payment history
// @Tags        bills
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bill ID"
// @Success     200 {object} MessageResponse "Bill deleted"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	billID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.DeleteBill(userID, billID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}

// BillListResponse represents a list of bills with a total count.
type BillListResponse struct {
	Bills []models.Bill `json:"bills"`
	Total int64         `json:"total"`
}
