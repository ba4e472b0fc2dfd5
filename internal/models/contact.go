package models

import "time"

// Contact is a lead/customer record. UserID is the owner for authorization.
type Contact struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"user,omitempty"`

	Name        *string `gorm:"size:255" json:"name"`
	Email       string  `gorm:"size:255;not null" json:"email"`
	PhoneNumber *string `gorm:"size:20" json:"phone_number"`
	Company     *string `gorm:"size:255" json:"company"`

	Projects []Project `gorm:"foreignKey:ContactID" json:"projects,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
