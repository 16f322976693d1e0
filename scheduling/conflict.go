package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"glowbook-backend/models"
	"glowbook-backend/utils"
)

// slotRange is a half-open interval [Start, End) in minutes since
// midnight.
type slotRange struct {
	Start int
	End   int
}

// overlaps tests two half-open intervals. A booking ending exactly when
// another starts does not conflict; back-to-back appointments are allowed.
func (a slotRange) overlaps(b slotRange) bool {
	return a.Start < b.End && b.Start < a.End
}

// ConflictChecker answers whether a proposed slot collides with a
// non-cancelled booking for the same resource.
type ConflictChecker struct {
	db *gorm.DB
}

func NewConflictChecker(db *gorm.DB) *ConflictChecker {
	return &ConflictChecker{db: db}
}

// HasConflict reports whether [startMin, startMin+duration) on date
// overlaps an existing non-cancelled booking. With a staff member the
// check runs against that member's bookings; without one it runs against
// the salon's other unassigned bookings only, since an unassigned slot
// does not reserve a specific resource.
//
// Callers that go on to insert must pass their open transaction so the
// probe and the write share one unit.
func (c *ConflictChecker) HasConflict(
	ctx context.Context,
	tx *gorm.DB,
	salonID uuid.UUID,
	staffID *uuid.UUID,
	date time.Time,
	startMin, durationMin int,
) (bool, error) {
	if tx == nil {
		tx = c.db
	}

	proposed := slotRange{Start: startMin, End: startMin + durationMin}

	q := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("salon_id = ?", salonID).
		Where("date = ?", utils.NormalizeDate(date)).
		Where("status <> ?", models.BookingCancelled)

	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	} else {
		q = q.Where("staff_id IS NULL")
	}

	var existing []models.Booking
	if err := q.Find(&existing).Error; err != nil {
		return false, err
	}

	for _, b := range existing {
		start, err := utils.ParseClockMinutes(b.StartTime)
		if err != nil {
			// A stored row with an unreadable time still occupies its day;
			// failing the check is safer than ignoring it.
			return false, err
		}
		if proposed.overlaps(slotRange{Start: start, End: start + b.ResolvedDuration()}) {
			return true, nil
		}
	}

	return false, nil
}
