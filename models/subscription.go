package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionPlan holds the immutable resource ceilings a salon buys into.
type SubscriptionPlan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"not null"`
	Price       float64   `gorm:"type:decimal(10,2);default:0.0"`
	MaxStaff    int       `gorm:"not null"`
	MaxServices int       `gorm:"not null"`

	gorm.Model
}

func (p *SubscriptionPlan) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type Subscription struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`
	PlanID  uuid.UUID `gorm:"type:uuid;index;not null"`

	Status           SubscriptionStatus `gorm:"type:varchar(20);not null;default:'active'"`
	CurrentPeriodEnd time.Time

	Plan SubscriptionPlan `gorm:"foreignKey:PlanID"`

	gorm.Model
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
