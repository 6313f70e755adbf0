package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleRegular  = "regular"
	RoleBusiness = "business"
)

type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Email          string         `gorm:"uniqueIndex;size:255" json:"email"`
	HashedPassword string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role           string         `gorm:"size:32" json:"role"`
	APIToken       *string        `gorm:"column:api_token;size:128;index" json:"-"`
	TokenExpires   *time.Time     `json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
