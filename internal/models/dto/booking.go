package dto

import "strings"

// CreateOrderRequest is the body of POST /payments/create-order.
type CreateOrderRequest struct {
	ListenerID  string `json:"listener_id"`
	BookingType string `json:"booking_type"`
	Amount      int64  `json:"amount"`

	// Optional client-generated key; retries carrying the same key get
	// the same gateway order back instead of a fresh one.
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

func (r *CreateOrderRequest) Sanitize() {
	r.ListenerID = strings.TrimSpace(r.ListenerID)
	r.BookingType = strings.TrimSpace(strings.ToLower(r.BookingType))
	r.IdempotencyKey = strings.TrimSpace(r.IdempotencyKey)
}

func (r *CreateOrderRequest) Complete() bool {
	return r.ListenerID != "" && r.BookingType != "" && r.Amount != 0
}

type CreateOrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// VerifyPaymentRequest is the body of POST /payments/verify-payment.
// The razorpay_* fields come straight from the checkout widget and are
// untrusted until the signature check passes.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	ListenerID        string `json:"listener_id"`
	BookingType       string `json:"booking_type"`
	Amount            int64  `json:"amount"`
}

func (r *VerifyPaymentRequest) Sanitize() {
	r.RazorpayOrderID = strings.TrimSpace(r.RazorpayOrderID)
	r.RazorpayPaymentID = strings.TrimSpace(r.RazorpayPaymentID)
	r.RazorpaySignature = strings.TrimSpace(r.RazorpaySignature)
	r.ListenerID = strings.TrimSpace(r.ListenerID)
	r.BookingType = strings.TrimSpace(strings.ToLower(r.BookingType))
}

func (r *VerifyPaymentRequest) Complete() bool {
	return r.RazorpayOrderID != "" && r.RazorpayPaymentID != "" && r.RazorpaySignature != ""
}

type VerifyPaymentResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id"`
}
