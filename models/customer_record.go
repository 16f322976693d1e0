package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerSalonProfile is the salon's own view of a customer. At most one
// row per (user, salon) pair; writes are create-or-replace on that key.
type CustomerSalonProfile struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_profile_user_salon,priority:1"`
	SalonID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_profile_user_salon,priority:2"`

	FullName string
	Phone    string

	DateOfBirth    *time.Time
	SkinType       string `gorm:"type:text"`
	SkinIssues     string `gorm:"type:text"`
	AllergyRecords string `gorm:"type:text"`

	gorm.Model
}

func (p *CustomerSalonProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// TreatmentRecord is the clinical note a salon keeps per appointment.
// Keyed by booking when one exists, otherwise by (user, salon) with a
// manual service name.
type TreatmentRecord struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	BookingID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	SalonID   uuid.UUID  `gorm:"type:uuid;index;not null"`

	ServiceNameManual string
	RecordDate        *time.Time `gorm:"type:date"`

	TreatmentDetails          string     `gorm:"type:text"`
	ProductsUsed              string     `gorm:"type:text"`
	SkinReaction              string     `gorm:"type:text"`
	ImprovementNotes          string     `gorm:"type:text"`
	RecommendedNextTreatment  string     `gorm:"type:text"`
	PostTreatmentInstructions string     `gorm:"type:text"`
	FollowUpReminderDate      *time.Time `gorm:"type:date"`
	MarketingNotes            string     `gorm:"type:text"`

	gorm.Model
}

func (r *TreatmentRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
