package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingType string
type BookingStatus string

const (
	BookingTypeVoice BookingType = "voice"
	BookingTypeVideo BookingType = "video"

	StatusConfirmed BookingStatus = "confirmed"
)

// Booking is the authoritative record of a paid session. One row exists
// per gateway payment; the unique index on PaymentID is what enforces
// at-most-once settlement across concurrent handlers.
type Booking struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	ListenerID  string        `json:"listener_id"`
	BookingType BookingType   `json:"booking_type"`
	Amount      int64         `json:"amount"`
	PaymentID   string        `json:"payment_id" gorm:"uniqueIndex"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	return
}

func (t BookingType) IsValid() bool {
	switch t {
	case BookingTypeVoice, BookingTypeVideo:
		return true
	default:
		return false
	}
}
