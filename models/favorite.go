package models

import (
	"time"
)

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;uniqueIndex:idx_fav_user_room" json:"user_id"`
	RoomID    uint      `gorm:"column:room_id;uniqueIndex:idx_fav_user_room" json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}
