package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"glowbook-backend/models"
)

func TestSlotRangeOverlaps(t *testing.T) {
	base := slotRange{Start: 600, End: 630} // 10:00-10:30

	tests := []struct {
		name  string
		other slotRange
		want  bool
	}{
		{"identical", slotRange{600, 630}, true},
		{"overlapping middle", slotRange{615, 645}, true},
		{"contained", slotRange{605, 625}, true},
		{"containing", slotRange{570, 660}, true},
		{"back-to-back after", slotRange{630, 660}, false},
		{"back-to-back before", slotRange{570, 600}, false},
		{"disjoint", slotRange{700, 730}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, base.overlaps(tt.other))
			require.Equal(t, tt.want, tt.other.overlaps(base))
		})
	}
}

func TestHasConflict_StaffSlot(t *testing.T) {
	db := openTestDB(t)
	salon := seedSalon(t, db, 5, 5)
	staff := seedStaff(t, db, salon.ID, "Mina")
	user := seedUser(t, db, "c@example.com")
	checker := NewConflictChecker(db)
	ctx := context.Background()

	booking := models.Booking{
		SalonID:         salon.ID,
		UserID:          user.ID,
		StaffID:         &staff.ID,
		Date:            dateOn(2),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          models.BookingConfirmed,
	}
	require.NoError(t, db.Create(&booking).Error)

	conflict, err := checker.HasConflict(ctx, nil, salon.ID, &staff.ID, dateOn(2), 615, 30)
	require.NoError(t, err)
	require.True(t, conflict, "10:15-10:45 overlaps 10:00-10:30")

	conflict, err = checker.HasConflict(ctx, nil, salon.ID, &staff.ID, dateOn(2), 630, 30)
	require.NoError(t, err)
	require.False(t, conflict, "back-to-back 10:30-11:00 is allowed")

	conflict, err = checker.HasConflict(ctx, nil, salon.ID, &staff.ID, dateOn(3), 615, 30)
	require.NoError(t, err)
	require.False(t, conflict, "another day is free")

	otherStaff := seedStaff(t, db, salon.ID, "Noor")
	conflict, err = checker.HasConflict(ctx, nil, salon.ID, &otherStaff.ID, dateOn(2), 615, 30)
	require.NoError(t, err)
	require.False(t, conflict, "another staff member is free")
}

func TestHasConflict_CancelledDoesNotBlock(t *testing.T) {
	db := openTestDB(t)
	salon := seedSalon(t, db, 5, 5)
	staff := seedStaff(t, db, salon.ID, "Mina")
	user := seedUser(t, db, "c@example.com")
	checker := NewConflictChecker(db)

	booking := models.Booking{
		SalonID:         salon.ID,
		UserID:          user.ID,
		StaffID:         &staff.ID,
		Date:            dateOn(2),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          models.BookingCancelled,
	}
	require.NoError(t, db.Create(&booking).Error)

	conflict, err := checker.HasConflict(context.Background(), nil, salon.ID, &staff.ID, dateOn(2), 600, 30)
	require.NoError(t, err)
	require.False(t, conflict)
}

func TestHasConflict_UnassignedOnlyAgainstUnassigned(t *testing.T) {
	db := openTestDB(t)
	salon := seedSalon(t, db, 5, 5)
	staff := seedStaff(t, db, salon.ID, "Mina")
	user := seedUser(t, db, "c@example.com")
	checker := NewConflictChecker(db)
	ctx := context.Background()

	assigned := models.Booking{
		SalonID:         salon.ID,
		UserID:          user.ID,
		StaffID:         &staff.ID,
		Date:            dateOn(2),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          models.BookingPending,
	}
	require.NoError(t, db.Create(&assigned).Error)

	// An unassigned request does not reserve a specific resource, so a
	// staff-assigned booking at the same time does not block it.
	conflict, err := checker.HasConflict(ctx, nil, salon.ID, nil, dateOn(2), 600, 30)
	require.NoError(t, err)
	require.False(t, conflict)

	unassigned := models.Booking{
		SalonID:         salon.ID,
		UserID:          user.ID,
		Date:            dateOn(2),
		StartTime:       "10:00",
		DurationMinutes: 60,
		Status:          models.BookingPending,
	}
	require.NoError(t, db.Create(&unassigned).Error)

	conflict, err = checker.HasConflict(ctx, nil, salon.ID, nil, dateOn(2), 600, 30)
	require.NoError(t, err)
	require.True(t, conflict, "unassigned bookings collide with each other")

	// And the staff-assigned side ignores the unassigned row.
	conflict, err = checker.HasConflict(ctx, nil, salon.ID, &staff.ID, dateOn(2), 700, 30)
	require.NoError(t, err)
	require.False(t, conflict)
}
