package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/solacehq/solace-payment-service/internal/models"
	"github.com/solacehq/solace-payment-service/internal/models/dto"
	"github.com/solacehq/solace-payment-service/internal/razorpay"
	"github.com/solacehq/solace-payment-service/internal/repository/posgrest"
	"github.com/solacehq/solace-payment-service/internal/service/serverrors"
)

// BookingRepo defines the persistence operations for bookings. The
// implementation wired here runs on the service-role connection; regular
// callers have no insert rights on the bookings table, the signature
// check is what authorizes the write.
type BookingRepo interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetBy(ctx context.Context, key string, value interface{}) (*[]models.Booking, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// SettlementService verifies a gateway payment proof and commits the
// booking. A booking is created only when the recomputed HMAC matches
// the signature supplied by the client.
type SettlementService struct {
	secret    string
	Bookings  BookingRepo
	Tokens    TokenResolver
	Publisher Publisher
}

func NewSettlementService(secret string, bookings BookingRepo, tokens TokenResolver, publisher Publisher) *SettlementService {
	return &SettlementService{
		secret:    secret,
		Bookings:  bookings,
		Tokens:    tokens,
		Publisher: publisher,
	}
}

// VerifyAndSettle runs the settlement state machine: input check, config
// check, authentication, signature verification, booking insert. Every
// failure branch before the insert leaves no state behind. Settling the
// same payment twice returns the already-created booking instead of an
// error, so client retries are harmless.
func (s *SettlementService) VerifyAndSettle(ctx context.Context, req *dto.VerifyPaymentRequest, bearer string) (*dto.VerifyPaymentResponse, error) {
	req.Sanitize()
	if !req.Complete() {
		return nil, serverrors.ErrMissingPaymentProof
	}

	if s.secret == "" {
		return nil, serverrors.ErrGatewayNotConfigured
	}

	// Authentication comes before any HMAC work so anonymous callers
	// cannot burn CPU on signature computation.
	identity, err := s.Tokens.Resolve(bearer)
	if err != nil {
		return nil, serverrors.ErrUnauthorized
	}

	if !razorpay.VerifySignature(s.secret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		logrus.WithFields(logrus.Fields{
			"order_id":   req.RazorpayOrderID,
			"payment_id": req.RazorpayPaymentID,
			"user_id":    identity.UserID,
		}).Warn("payment signature mismatch")
		return nil, serverrors.ErrInvalidSignature
	}

	booking := &models.Booking{
		UserID:      identity.UserID,
		ListenerID:  req.ListenerID,
		BookingType: models.BookingType(req.BookingType),
		Amount:      req.Amount,
		PaymentID:   req.RazorpayPaymentID,
		Status:      models.StatusConfirmed,
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		if posgrest.IsUniqueViolation(err) {
			return s.alreadySettled(ctx, req.RazorpayPaymentID)
		}
		logrus.WithFields(logrus.Fields{
			"order_id":   req.RazorpayOrderID,
			"payment_id": req.RazorpayPaymentID,
		}).Errorf("booking insert failed: %v", err)
		return nil, serverrors.ErrSettlementFailure
	}

	s.publishConfirmed(ctx, booking)

	return &dto.VerifyPaymentResponse{Success: true, BookingID: booking.ID}, nil
}

// alreadySettled resolves a duplicate payment to the existing booking.
// The same proof verified twice yields the same booking id.
func (s *SettlementService) alreadySettled(ctx context.Context, paymentID string) (*dto.VerifyPaymentResponse, error) {
	existing, err := s.Bookings.GetBy(ctx, "payment_id", paymentID)
	if err != nil || existing == nil || len(*existing) == 0 {
		logrus.WithField("payment_id", paymentID).Errorf("duplicate payment but booking lookup failed: %v", err)
		return nil, serverrors.ErrSettlementFailure
	}

	booking := (*existing)[0]
	logrus.WithFields(logrus.Fields{
		"payment_id": paymentID,
		"booking_id": booking.ID,
	}).Info("payment already settled, returning existing booking")

	return &dto.VerifyPaymentResponse{Success: true, BookingID: booking.ID}, nil
}

// publishConfirmed emits the bookings.confirmed event. The booking is
// already committed at this point, so a publish failure is logged and
// swallowed rather than turning a settled payment into a client error.
func (s *SettlementService) publishConfirmed(ctx context.Context, booking *models.Booking) {
	if s.Publisher == nil {
		return
	}

	event := models.BookingConfirmedEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ListenerID:  booking.ListenerID,
		BookingType: string(booking.BookingType),
		Amount:      booking.Amount,
		PaymentID:   booking.PaymentID,
		ConfirmedAt: time.Now().UTC(),
	}

	if err := s.Publisher.Publish(ctx, models.BookingConfirmedEventTopic, event); err != nil {
		logrus.Errorf("error publishing booking confirmed event %s", err.Error())
	}
}
