package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the thin customer identity record supplied by the platform's
// account system. Salons never own it; salon-scoped detail lives in
// CustomerSalonProfile.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Name      string
	Phone     string
	AvatarURL string

	gorm.Model
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
