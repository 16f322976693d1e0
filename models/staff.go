package models

import (
	"glowbook-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name  string `gorm:"not null"`
	Email string `gorm:"index"`
	Phone string

	// Optional login credential. Empty for staff who never sign in.
	Password string

	Role                 string `gorm:"type:varchar(20);not null;default:'staff'"` // 'owner', 'manager' or 'staff'
	CommissionPercentage int    `gorm:"default:0"`                                 // 0-100
	IsActive             bool   `gorm:"default:true"`

	Assignments []ServiceAssignment `gorm:"foreignKey:StaffID"`

	gorm.Model
}

func (s *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Password != "" {
		hashed, err := utils.HashPassword(s.Password)
		if err != nil {
			return err
		}
		s.Password = hashed
	}
	return
}

// ServiceAssignment records that a staff member is qualified to perform a
// service. The set for a staff member is always replaced wholesale.
type ServiceAssignment struct {
	StaffID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Staff   *Staff   `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
	Service *Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}
