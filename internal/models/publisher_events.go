package models

import "time"

const (
	BookingConfirmedEventTopic = "bookings.confirmed"
)

type BookingConfirmedEvent struct {
	BookingID   string    `json:"booking_id"`
	UserID      string    `json:"user_id"`
	ListenerID  string    `json:"listener_id"`
	BookingType string    `json:"booking_type"`
	Amount      int64     `json:"amount"`
	PaymentID   string    `json:"payment_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
