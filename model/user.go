// Package model defines database models
package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	MobileNo     string `gorm:"index" json:"mobile_no"`
	ProfileImage string `json:"profile_image"`
	Status       int    `gorm:"default:1" json:"status"`

	// Login OTP state. Both fields are set together on a login request
	// and cleared together on a successful verification. A fresh login
	// request overwrites whatever pair was stored before, so at most one
	// code can ever verify.
	Otp          *string    `json:"-"`
	OtpExpiresAt *time.Time `json:"-"`

	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Reviews []Review `gorm:"foreignKey:UserID" json:"-"`
	Orders  []Order  `gorm:"foreignKey:UserID" json:"-"`
}

// Active scopes a query to rows that aren't soft-disabled. Every
// account-facing lookup goes through this before doing anything else.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", 1)
}
