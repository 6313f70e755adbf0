package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;index" json:"name"`
	Address     string         `gorm:"size:255" json:"address"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Rating      *float64       `json:"rating,omitempty"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	OwnerID     uint           `gorm:"index;column:owner_id" json:"owner_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Owner User   `gorm:"foreignKey:OwnerID;references:ID" json:"-"`
	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
