package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/solacehq/solace-payment-service/internal/auth"
	"github.com/solacehq/solace-payment-service/internal/models"
	"github.com/solacehq/solace-payment-service/internal/models/dto"
	"github.com/solacehq/solace-payment-service/internal/razorpay"
	"github.com/solacehq/solace-payment-service/internal/service"
	"github.com/solacehq/solace-payment-service/internal/service/mocks"
	"github.com/solacehq/solace-payment-service/internal/service/serverrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateOrder_Success(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	mockListeners := mocks.NewMockListenerRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	orderService := service.NewOrderService(mockGateway, mockListeners, mockTokens)

	ctx := context.Background()
	req := &dto.CreateOrderRequest{
		ListenerID:  "listener-1",
		BookingType: "voice",
		Amount:      15,
	}

	mockGateway.EXPECT().Configured().Return(true).Once()
	mockTokens.EXPECT().
		Resolve("Bearer token-abc").
		Return(&auth.Identity{UserID: "user-9"}, nil).
		Once()
	mockListeners.EXPECT().
		GetByID(ctx, "listener-1").
		Return(&models.Listener{ID: "listener-1", Name: "Asha"}, nil).
		Once()
	mockGateway.EXPECT().
		CreateOrder(ctx, mock.MatchedBy(func(r razorpay.OrderRequest) bool {
			return r.Amount == 15 &&
				r.Notes["listener_id"] == "listener-1" &&
				r.Notes["booking_type"] == "voice" &&
				r.Notes["user_id"] == "user-9" &&
				r.Notes["listener_name"] == "Asha"
		})).
		Return(&razorpay.Order{ID: "order_Nq7xLp1", Amount: 1500, Currency: "INR"}, nil).
		Once()
	mockGateway.EXPECT().KeyID().Return("rzp_test_key").Once()

	res, err := orderService.CreateOrder(ctx, req, "Bearer token-abc")

	assert.NoError(t, err)
	assert.Equal(t, "order_Nq7xLp1", res.OrderID)
	assert.Equal(t, int64(1500), res.Amount)
	assert.Equal(t, "INR", res.Currency)
	assert.Equal(t, "rzp_test_key", res.KeyID)
}

func TestCreateOrder_MissingFields(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	mockListeners := mocks.NewMockListenerRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	orderService := service.NewOrderService(mockGateway, mockListeners, mockTokens)

	tests := []struct {
		name string
		req  dto.CreateOrderRequest
	}{
		{"missing listener id", dto.CreateOrderRequest{BookingType: "voice", Amount: 15}},
		{"missing booking type", dto.CreateOrderRequest{ListenerID: "listener-1", Amount: 15}},
		{"missing amount", dto.CreateOrderRequest{ListenerID: "listener-1", BookingType: "voice"}},
		{"negative amount", dto.CreateOrderRequest{ListenerID: "listener-1", BookingType: "voice", Amount: -5}},
		{"unknown booking type", dto.CreateOrderRequest{ListenerID: "listener-1", BookingType: "text", Amount: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			res, err := orderService.CreateOrder(context.Background(), &req, "Bearer token-abc")

			assert.Nil(t, res)
			assert.ErrorIs(t, err, serverrors.ErrInvalidRequest)
		})
	}

	mockGateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	mockTokens.AssertNotCalled(t, "Resolve", mock.Anything)
}

func TestCreateOrder_GatewayNotConfigured(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	mockListeners := mocks.NewMockListenerRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	orderService := service.NewOrderService(mockGateway, mockListeners, mockTokens)

	req := &dto.CreateOrderRequest{ListenerID: "listener-1", BookingType: "video", Amount: 20}

	mockGateway.EXPECT().Configured().Return(false).Once()

	res, err := orderService.CreateOrder(context.Background(), req, "Bearer token-abc")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, serverrors.ErrGatewayNotConfigured)
	mockTokens.AssertNotCalled(t, "Resolve", mock.Anything)
	mockGateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_Unauthorized(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	mockListeners := mocks.NewMockListenerRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	orderService := service.NewOrderService(mockGateway, mockListeners, mockTokens)

	req := &dto.CreateOrderRequest{ListenerID: "listener-1", BookingType: "voice", Amount: 15}

	mockGateway.EXPECT().Configured().Return(true).Once()
	mockTokens.EXPECT().
		Resolve("Bearer bad-token").
		Return(nil, errors.New("token expired")).
		Once()

	res, err := orderService.CreateOrder(context.Background(), req, "Bearer bad-token")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, serverrors.ErrUnauthorized)

	// No side effect for unauthenticated callers: the gateway and the
	// listener directory are never touched.
	mockGateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	mockListeners.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateOrder_ListenerLookupFallsBack(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	mockListeners := mocks.NewMockListenerRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	orderService := service.NewOrderService(mockGateway, mockListeners, mockTokens)

	ctx := context.Background()
	req := &dto.CreateOrderRequest{ListenerID: "listener-gone", BookingType: "video", Amount: 30}

	mockGateway.EXPECT().Configured().Return(true).Once()
	mockTokens.EXPECT().
		Resolve("Bearer token-abc").
		Return(&auth.Identity{UserID: "user-9"}, nil).
		Once()
	mockListeners.EXPECT().
		GetByID(ctx, "listener-gone").
		Return(nil, errors.New("record not found")).
		Once()
	mockGateway.EXPECT().
		CreateOrder(ctx, mock.MatchedBy(func(r razorpay.OrderRequest) bool {
			return r.Notes["listener_name"] == "Unknown"
		})).
		Return(&razorpay.Order{ID: "order_1", Amount: 3000, Currency: "INR"}, nil).
		Once()
	mockGateway.EXPECT().KeyID().Return("rzp_test_key").Once()

	res, err := orderService.CreateOrder(ctx, req, "Bearer token-abc")

	assert.NoError(t, err)
	assert.Equal(t, "order_1", res.OrderID)
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	mockGateway := mocks.NewMockGateway(t)
	mockListeners := mocks.NewMockListenerRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	orderService := service.NewOrderService(mockGateway, mockListeners, mockTokens)

	ctx := context.Background()
	req := &dto.CreateOrderRequest{ListenerID: "listener-1", BookingType: "voice", Amount: 15}

	mockGateway.EXPECT().Configured().Return(true).Once()
	mockTokens.EXPECT().
		Resolve("Bearer token-abc").
		Return(&auth.Identity{UserID: "user-9"}, nil).
		Once()
	mockListeners.EXPECT().
		GetByID(ctx, "listener-1").
		Return(&models.Listener{ID: "listener-1", Name: "Asha"}, nil).
		Once()
	mockGateway.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("razorpay.OrderRequest")).
		Return(nil, errors.New("gateway order create failed: authentication failed (401)")).
		Once()

	res, err := orderService.CreateOrder(ctx, req, "Bearer token-abc")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, serverrors.ErrGatewayFailure)
}
