package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solacehq/solace-payment-service/internal/models/dto"
	"github.com/solacehq/solace-payment-service/internal/service/serverrors"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest, bearer string) (*dto.CreateOrderResponse, error)
}

type SettlementService interface {
	VerifyAndSettle(ctx context.Context, req *dto.VerifyPaymentRequest, bearer string) (*dto.VerifyPaymentResponse, error)
}

type PaymentHandler struct {
	Orders      OrderService
	Settlements SettlementService
}

func NewPaymentHandler(orders OrderService, settlements SettlementService) *PaymentHandler {
	return &PaymentHandler{Orders: orders, Settlements: settlements}
}

// POST /payments/create-order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	bearer := c.GetHeader("Authorization")
	if bearer == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	res, err := h.Orders.CreateOrder(c.Request.Context(), &req, bearer)
	if err != nil {
		status, body := orderError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, res)
}

// POST /payments/verify-payment
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing payment details"})
		return
	}

	bearer := c.GetHeader("Authorization")
	if bearer == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	res, err := h.Settlements.VerifyAndSettle(c.Request.Context(), &req, bearer)
	if err != nil {
		status, body := settlementError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, res)
}

// orderError maps service errors to the wire contract. Internal detail
// never crosses the boundary; clients get the generic message for the
// category.
func orderError(err error) (int, gin.H) {
	switch {
	case errors.Is(err, serverrors.ErrInvalidRequest):
		return http.StatusBadRequest, gin.H{"error": "Missing required fields"}
	case errors.Is(err, serverrors.ErrUnauthorized):
		return http.StatusUnauthorized, gin.H{"error": "Unauthorized"}
	case errors.Is(err, serverrors.ErrGatewayNotConfigured):
		return http.StatusInternalServerError, gin.H{"error": "Razorpay not configured"}
	case errors.Is(err, serverrors.ErrGatewayFailure):
		return http.StatusInternalServerError, gin.H{"error": "Failed to create order"}
	default:
		return http.StatusInternalServerError, gin.H{"error": "Internal server error"}
	}
}

func settlementError(err error) (int, gin.H) {
	switch {
	case errors.Is(err, serverrors.ErrMissingPaymentProof):
		return http.StatusBadRequest, gin.H{"error": "Missing payment details"}
	case errors.Is(err, serverrors.ErrInvalidSignature):
		return http.StatusBadRequest, gin.H{"error": "Invalid payment signature"}
	case errors.Is(err, serverrors.ErrUnauthorized):
		return http.StatusUnauthorized, gin.H{"error": "Unauthorized"}
	case errors.Is(err, serverrors.ErrGatewayNotConfigured):
		return http.StatusInternalServerError, gin.H{"error": "Razorpay not configured"}
	case errors.Is(err, serverrors.ErrSettlementFailure):
		return http.StatusInternalServerError, gin.H{"error": "Failed to create booking"}
	default:
		return http.StatusInternalServerError, gin.H{"error": "Internal server error"}
	}
}
