package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// bookingTransitions is the full lifecycle table. Completed and cancelled
// are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted, BookingCancelled},
	BookingCancelled: {},
	BookingCompleted: {},
}

// CanTransitionTo reports whether the lifecycle permits moving from s to
// target.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// ValidStatus reports whether s is one of the known lifecycle states.
func (s BookingStatus) ValidStatus() bool {
	_, ok := bookingTransitions[s]
	return ok
}

type BookingOrigin string

const (
	// OriginCustomer marks a self-service booking; it starts in pending.
	OriginCustomer BookingOrigin = "customer"
	// OriginStaffEntered marks a front-desk walk-in; it starts confirmed.
	OriginStaffEntered BookingOrigin = "staff_entered"
)

type Booking struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null"`

	// Either ServiceID points at a catalogue row, or ServiceNameManual and
	// DurationManual describe a legacy/manual entry.
	ServiceID         *uuid.UUID `gorm:"type:uuid;index"`
	ServiceNameManual string
	DurationManual    int

	StaffID *uuid.UUID `gorm:"type:uuid;index"`

	Date            time.Time `gorm:"type:date;not null;index"`
	StartTime       string    `gorm:"type:varchar(5);not null"` // "HH:MM"
	DurationMinutes int       `gorm:"not null"`

	Status BookingStatus `gorm:"type:varchar(20);not null;index"`
	Origin BookingOrigin `gorm:"type:varchar(20);not null;default:'customer'"`

	// Contact details as entered at booking time; read by the customer
	// enrichment view, never treated as the identity of record.
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Notes string `gorm:"type:text"`

	ConfirmedAt *time.Time
	CancelledAt *time.Time
	CompletedAt *time.Time

	Service *Service `gorm:"foreignKey:ServiceID"`
	Staff   *Staff   `gorm:"foreignKey:StaffID"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// ResolvedDuration returns the booking's effective duration in minutes.
func (b *Booking) ResolvedDuration() int {
	if b.DurationMinutes > 0 {
		return b.DurationMinutes
	}
	return b.DurationManual
}
