package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/solacehq/solace-payment-service/internal/auth"
	"github.com/solacehq/solace-payment-service/internal/models"
	"github.com/solacehq/solace-payment-service/internal/models/dto"
	"github.com/solacehq/solace-payment-service/internal/razorpay"
	"github.com/solacehq/solace-payment-service/internal/service/serverrors"
)

const unknownListenerName = "Unknown"

// ListenerRepo defines the read access the order flow needs on listeners.
type ListenerRepo interface {
	GetByID(ctx context.Context, id string) (*models.Listener, error)
}

// TokenResolver resolves a bearer credential to a caller identity.
type TokenResolver interface {
	Resolve(bearer string) (*auth.Identity, error)
}

// Gateway defines the payment gateway operations used by the order flow.
type Gateway interface {
	Configured() bool
	KeyID() string
	CreateOrder(ctx context.Context, req razorpay.OrderRequest) (*razorpay.Order, error)
}

// OrderService creates gateway payment orders for session bookings.
// It has no local side effects; the order lives on the gateway until the
// settlement flow turns it into a booking.
type OrderService struct {
	Gateway   Gateway
	Listeners ListenerRepo
	Tokens    TokenResolver
}

func NewOrderService(gateway Gateway, listeners ListenerRepo, tokens TokenResolver) *OrderService {
	return &OrderService{
		Gateway:   gateway,
		Listeners: listeners,
		Tokens:    tokens,
	}
}

// CreateOrder validates the booking request, authenticates the caller and
// asks the gateway to reserve the amount. Validation and the config check
// run before authentication, and authentication runs before the gateway
// call, so an unauthenticated request never reaches the gateway.
func (s *OrderService) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest, bearer string) (*dto.CreateOrderResponse, error) {
	req.Sanitize()
	if !req.Complete() || req.Amount <= 0 {
		return nil, serverrors.ErrInvalidRequest
	}
	if !models.BookingType(req.BookingType).IsValid() {
		return nil, serverrors.ErrInvalidRequest
	}

	if !s.Gateway.Configured() {
		return nil, serverrors.ErrGatewayNotConfigured
	}

	identity, err := s.Tokens.Resolve(bearer)
	if err != nil {
		return nil, serverrors.ErrUnauthorized
	}

	listenerName := unknownListenerName
	if listener, err := s.Listeners.GetByID(ctx, req.ListenerID); err == nil && listener != nil && listener.Name != "" {
		listenerName = listener.Name
	}

	order, err := s.Gateway.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:         req.Amount,
		IdempotencyKey: req.IdempotencyKey,
		Notes: map[string]string{
			"listener_id":   req.ListenerID,
			"booking_type":  req.BookingType,
			"user_id":       identity.UserID,
			"listener_name": listenerName,
		},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"listener_id": req.ListenerID,
			"user_id":     identity.UserID,
		}).Errorf("gateway order create failed: %v", err)
		return nil, serverrors.ErrGatewayFailure
	}

	return &dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.Gateway.KeyID(),
	}, nil
}
