package models

import "time"

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	AvatarURL       *string    `gorm:"size:512" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
