package models

import (
	"time"
)

// Booking records a successful purchase of one unit of an offer at the
// price that was authoritative inside the booking transaction.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OfferID   uint      `gorm:"index;column:offer_id" json:"offer_id"`
	UserID    uint      `gorm:"index;column:user_id" json:"user_id"`
	Price     float64   `gorm:"column:price" json:"price"`
	Reference string    `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	CreatedAt time.Time `json:"created_at"`
}
