package models

import (
	"time"
)

// RoomOffer is a priced, time-decaying listing for a room over a date range.
// InitialPrice and CreatedAt anchor the decay curve and are immutable after
// creation; CurrentPrice is the last persisted quote and never drops below
// MinPrice. Available is only ever decremented inside a booking transaction.
type RoomOffer struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RoomID           uint      `gorm:"index;column:room_id" json:"room_id"`
	StartDate        time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate          time.Time `gorm:"column:end_date" json:"end_date"`
	InitialPrice     float64   `gorm:"column:initial_price" json:"initial_price"`
	CurrentPrice     float64   `gorm:"column:current_price" json:"current_price"`
	MinPrice         float64   `gorm:"column:min_price" json:"min_price"`
	PopularityFactor float64   `gorm:"column:popularity_factor;default:1" json:"popularity_factor"`
	Available        int       `gorm:"column:available" json:"available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
