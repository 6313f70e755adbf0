package models

import (
	"time"
)

// OfferView is an append-only view event. Rows are never updated or
// deleted; popularity is derived by counting them over a sliding window.
type OfferView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OfferID   uint      `gorm:"index;column:offer_id" json:"offer_id"`
	Timestamp time.Time `gorm:"index;column:timestamp" json:"timestamp"`
}
