package handler

import (
	"net/http"

	"github.com/contest-hub/backend/internal/models"
	"github.com/contest-hub/backend/internal/service"
	"github.com/contest-hub/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}

type PaymentRequest struct {
	Email         string  `json:"email" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Currency      string  `json:"currency"`
	ContestID     string  `json:"contestId"`
	TransactionID string  `json:"transactionId"`
}

// CreateIntent asks the payment gateway for a payment intent and hands the
// client secret back verbatim.
// POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req PaymentIntentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Payment intent request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	secret, err := h.paymentService.CreateIntent(req.Price, "usd")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create payment intent",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": secret,
	})
}

// Record appends a payment.
// POST /payment
func (h *PaymentHandler) Record(c *gin.Context) {
	var req PaymentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	payment := &models.Payment{
		Email:         req.Email,
		Amount:        req.Amount,
		Currency:      currency,
		ContestID:     req.ContestID,
		TransactionID: req.TransactionID,
	}

	recorded, err := h.paymentService.Record(payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to record payment",
		})
		return
	}

	c.JSON(http.StatusCreated, recorded)
}

// ListAll returns every payment.
// GET /payment
func (h *PaymentHandler) ListAll(c *gin.Context) {
	payments, err := h.paymentService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch payments",
		})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// ListByEmail returns one payer's records.
// GET /payment/:email
func (h *PaymentHandler) ListByEmail(c *gin.Context) {
	payments, err := h.paymentService.ListByEmail(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch payments",
		})
		return
	}

	c.JSON(http.StatusOK, payments)
}
