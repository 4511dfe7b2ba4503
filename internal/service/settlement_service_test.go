package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
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

const testSecret = "rzp_secret_4f8a"

func signedRequest() *dto.VerifyPaymentRequest {
	orderID := "order_Nq7xLp1"
	paymentID := "pay_Mk2vBn8"
	return &dto.VerifyPaymentRequest{
		RazorpayOrderID:   orderID,
		RazorpayPaymentID: paymentID,
		RazorpaySignature: razorpay.ComputeSignature(testSecret, orderID, paymentID),
		ListenerID:        "listener-1",
		BookingType:       "voice",
		Amount:            15,
	}
}

func TestVerifyAndSettle_Success(t *testing.T) {
	mockBookings := mocks.NewMockBookingRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	mockPublisher := mocks.NewMockPublisher(t)
	settlementService := service.NewSettlementService(testSecret, mockBookings, mockTokens, mockPublisher)

	ctx := context.Background()
	req := signedRequest()

	mockTokens.EXPECT().
		Resolve("Bearer token-abc").
		Return(&auth.Identity{UserID: "user-9"}, nil).
		Once()
	mockBookings.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Booking")).
		Run(func(ctx context.Context, booking *models.Booking) {
			assert.Equal(t, "user-9", booking.UserID)
			assert.Equal(t, "listener-1", booking.ListenerID)
			assert.Equal(t, models.BookingTypeVoice, booking.BookingType)
			assert.Equal(t, int64(15), booking.Amount)
			assert.Equal(t, "pay_Mk2vBn8", booking.PaymentID)
			assert.Equal(t, models.StatusConfirmed, booking.Status)
			booking.ID = "booking-42"
		}).
		Return(nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.BookingConfirmedEventTopic, mock.AnythingOfType("models.BookingConfirmedEvent")).
		Return(nil).
		Once()

	res, err := settlementService.VerifyAndSettle(ctx, req, "Bearer token-abc")

	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "booking-42", res.BookingID)
}

func TestVerifyAndSettle_MissingPaymentDetails(t *testing.T) {
	mockBookings := mocks.NewMockBookingRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	mockPublisher := mocks.NewMockPublisher(t)
	settlementService := service.NewSettlementService(testSecret, mockBookings, mockTokens, mockPublisher)

	tests := []struct {
		name string
		req  dto.VerifyPaymentRequest
	}{
		{"missing order id", dto.VerifyPaymentRequest{RazorpayPaymentID: "pay_1", RazorpaySignature: "sig"}},
		{"missing payment id", dto.VerifyPaymentRequest{RazorpayOrderID: "order_1", RazorpaySignature: "sig"}},
		{"missing signature", dto.VerifyPaymentRequest{RazorpayOrderID: "order_1", RazorpayPaymentID: "pay_1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			res, err := settlementService.VerifyAndSettle(context.Background(), &req, "Bearer token-abc")

			assert.Nil(t, res)
			assert.ErrorIs(t, err, serverrors.ErrMissingPaymentProof)
		})
	}

	mockTokens.AssertNotCalled(t, "Resolve", mock.Anything)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_GatewayNotConfigured(t *testing.T) {
	mockBookings := mocks.NewMockBookingRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	mockPublisher := mocks.NewMockPublisher(t)
	settlementService := service.NewSettlementService("", mockBookings, mockTokens, mockPublisher)

	res, err := settlementService.VerifyAndSettle(context.Background(), signedRequest(), "Bearer token-abc")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, serverrors.ErrGatewayNotConfigured)
	mockTokens.AssertNotCalled(t, "Resolve", mock.Anything)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_Unauthorized(t *testing.T) {
	mockBookings := mocks.NewMockBookingRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	mockPublisher := mocks.NewMockPublisher(t)
	settlementService := service.NewSettlementService(testSecret, mockBookings, mockTokens, mockPublisher)

	mockTokens.EXPECT().
		Resolve("Bearer bad-token").
		Return(nil, errors.New("token expired")).
		Once()

	res, err := settlementService.VerifyAndSettle(context.Background(), signedRequest(), "Bearer bad-token")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, serverrors.ErrUnauthorized)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_InvalidSignature(t *testing.T) {
	mockBookings := mocks.NewMockBookingRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	mockPublisher := mocks.NewMockPublisher(t)
	settlementService := service.NewSettlementService(testSecret, mockBookings, mockTokens, mockPublisher)

	req := signedRequest()
	// Flip one character of an otherwise valid signature.
	if req.RazorpaySignature[0] == 'f' {
		req.RazorpaySignature = "0" + req.RazorpaySignature[1:]
	} else {
		req.RazorpaySignature = "f" + req.RazorpaySignature[1:]
	}

	mockTokens.EXPECT().
		Resolve("Bearer token-abc").
		Return(&auth.Identity{UserID: "user-9"}, nil).
		Once()

	res, err := settlementService.VerifyAndSettle(context.Background(), req, "Bearer token-abc")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, serverrors.ErrInvalidSignature)

	// The core guarantee: a mismatched signature leaves no state behind.
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_DuplicatePaymentIsIdempotent(t *testing.T) {
	mockBookings := mocks.NewMockBookingRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	mockPublisher := mocks.NewMockPublisher(t)
	settlementService := service.NewSettlementService(testSecret, mockBookings, mockTokens, mockPublisher)

	ctx := context.Background()
	req := signedRequest()

	mockTokens.EXPECT().
		Resolve("Bearer token-abc").
		Return(&auth.Identity{UserID: "user-9"}, nil).
		Once()
	mockBookings.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Booking")).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_payment_id"}).
		Once()
	mockBookings.EXPECT().
		GetBy(ctx, "payment_id", "pay_Mk2vBn8").
		Return(&[]models.Booking{{ID: "booking-42", PaymentID: "pay_Mk2vBn8"}}, nil).
		Once()

	res, err := settlementService.VerifyAndSettle(ctx, req, "Bearer token-abc")

	assert.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "booking-42", res.BookingID)

	// The original settlement already announced the booking; replays stay quiet.
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_InsertFailure(t *testing.T) {
	mockBookings := mocks.NewMockBookingRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	mockPublisher := mocks.NewMockPublisher(t)
	settlementService := service.NewSettlementService(testSecret, mockBookings, mockTokens, mockPublisher)

	ctx := context.Background()

	mockTokens.EXPECT().
		Resolve("Bearer token-abc").
		Return(&auth.Identity{UserID: "user-9"}, nil).
		Once()
	mockBookings.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Booking")).
		Return(errors.New("connection refused")).
		Once()

	res, err := settlementService.VerifyAndSettle(ctx, signedRequest(), "Bearer token-abc")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, serverrors.ErrSettlementFailure)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_PublishFailureDoesNotFailSettlement(t *testing.T) {
	mockBookings := mocks.NewMockBookingRepo(t)
	mockTokens := mocks.NewMockTokenResolver(t)
	mockPublisher := mocks.NewMockPublisher(t)
	settlementService := service.NewSettlementService(testSecret, mockBookings, mockTokens, mockPublisher)

	ctx := context.Background()

	mockTokens.EXPECT().
		Resolve("Bearer token-abc").
		Return(&auth.Identity{UserID: "user-9"}, nil).
		Once()
	mockBookings.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Booking")).
		Run(func(ctx context.Context, booking *models.Booking) {
			booking.ID = "booking-42"
		}).
		Return(nil).
		Once()
	mockPublisher.EXPECT().
		Publish(ctx, models.BookingConfirmedEventTopic, mock.AnythingOfType("models.BookingConfirmedEvent")).
		Return(errors.New("kafka unavailable")).
		Once()

	res, err := settlementService.VerifyAndSettle(ctx, signedRequest(), "Bearer token-abc")

	assert.NoError(t, err)
	assert.Equal(t, "booking-42", res.BookingID)
}
