package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "billtrack/internal/errors"
	"billtrack/internal/models"
	"billtrack/internal/schedule"
	"billtrack/internal/services"
)

// PaymentHandler handles payment-related requests. Payments are always
// addressed through their owning bill.
type PaymentHandler struct {
	billService services.BillServicer
	loc         *time.Location
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(billService services.BillServicer, loc *time.Location) *PaymentHandler {
	return &PaymentHandler{billService: billService, loc: loc}
}

// PaymentRequest represents the request payload for recording a payment.
type PaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	Notes       string  `json:"notes" binding:"max=1000"`
}

// CreatePayment handles recording a payment against a bill.
// @Summary     Record a payment
// @Description Record a payment against a bill; payment_date defaults to the bill's next due date
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string         true "Bill ID"
// @Param       request body PaymentRequest true "Payment details"
// @Success     201 {object} models.Payment "Payment recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
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

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var paymentDate *time.Time
	if req.PaymentDate != "" {
		t, err := schedule.ParseLocalDate(req.PaymentDate, h.loc)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment_date must be a valid YYYY-MM-DD date"))
			return
		}
		paymentDate = &t
	}

	payment, err := h.billService.CreatePayment(userID, billID, req.Amount, paymentDate, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// GetPayments handles listing a bill's payments.
// @Summary     Get payments
// @Description Get a bill's payment history, most recent first
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Bill ID"
// @Success     200 {object} PaymentListResponse "Payments with total count"
// @Failure     400 {object} ErrorResponse "Invalid bill ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bill not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id}/payments [get]
func (h *PaymentHandler) GetPayments(c *gin.Context) {
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

	payments, err := h.billService.GetBillPayments(userID, billID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"total":    len(payments),
	})
}

// DeletePayment handles deleting a payment.
// @Summary     Delete payment
// @Description Delete a payment; the bill's paid state and due date are recomputed
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id        path string true "Bill ID"
// @Param       paymentId path string true "Payment ID"
// @Success     200 {object} MessageResponse "Payment deleted"
// @Failure     400 {object} ErrorResponse "Invalid bill or payment ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Payment not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id}/payments/{paymentId} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
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

	paymentID, err := parsePathID(c, "paymentId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.billService.DeletePayment(userID, billID, paymentID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}

// PaymentListResponse represents a list of payments with a total count.
type PaymentListResponse struct {
	Payments []models.Payment `json:"payments"`
	Total    int              `json:"total"`
}
