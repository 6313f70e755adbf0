package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	HotelID     uint   `gorm:"index;column:hotel_id" json:"hotel_id"`
	RoomNumber  string `json:"roomNumber" gorm:"column:room_number;type:varchar(50)"`
	Description string `json:"description" gorm:"type:text"`

	Hotel  Hotel       `gorm:"foreignKey:HotelID" json:"-"`
	Offers []RoomOffer `gorm:"foreignKey:RoomID" json:"offers,omitempty"`
}
