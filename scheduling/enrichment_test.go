package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"glowbook-backend/models"
)

func TestResolve_IdentityOnly(t *testing.T) {
	db := openTestDB(t)
	salon := seedSalon(t, db, 5, 5)
	user := seedUser(t, db, "a@x.com")
	enrichment := NewEnrichment(db)

	view, err := enrichment.Resolve(context.Background(), salon.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", view.Email)
	require.Empty(t, view.Name)
}

// A field filled by a higher-priority source is never overwritten by a
// lower one: the identity email wins over the booking's email.
func TestResolve_IdentityBeatsBooking(t *testing.T) {
	db := openTestDB(t)
	salon := seedSalon(t, db, 5, 5)
	user := seedUser(t, db, "a@x.com")
	enrichment := NewEnrichment(db)

	booking := models.Booking{
		SalonID:         salon.ID,
		UserID:          user.ID,
		Date:            dateOn(2),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          models.BookingCompleted,
		CustomerName:    "Ada",
		CustomerEmail:   "b@y.com",
		CustomerPhone:   "+15550001111",
	}
	require.NoError(t, db.Create(&booking).Error)

	view, err := enrichment.Resolve(context.Background(), salon.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", view.Email, "identity email is never overwritten")
	require.Equal(t, "Ada", view.Name, "empty identity fields fill from the booking")
	require.Equal(t, "+15550001111", view.Phone)
}

func TestResolve_BookingBeatsProfile(t *testing.T) {
	db := openTestDB(t)
	salon := seedSalon(t, db, 5, 5)
	user := seedUser(t, db, "a@x.com")
	enrichment := NewEnrichment(db)

	booking := models.Booking{
		SalonID:         salon.ID,
		UserID:          user.ID,
		Date:            dateOn(2),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          models.BookingCompleted,
		CustomerName:    "Ada from booking",
	}
	require.NoError(t, db.Create(&booking).Error)

	profile := models.CustomerSalonProfile{
		UserID:   user.ID,
		SalonID:  salon.ID,
		FullName: "Ada from CRM",
		Phone:    "+15550002222",
		SkinType: "dry",
	}
	require.NoError(t, db.Create(&profile).Error)

	view, err := enrichment.Resolve(context.Background(), salon.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada from booking", view.Name)
	require.Equal(t, "+15550002222", view.Phone, "phone was still empty, CRM fills it")
	require.Equal(t, "dry", view.SkinType)
}

// Enrichment reads the most recent booking for this salon only.
func TestResolve_LatestBookingOfThisSalon(t *testing.T) {
	db := openTestDB(t)
	salon := seedSalon(t, db, 5, 5)
	other := seedSalon(t, db, 5, 5)
	user := seedUser(t, db, "a@x.com")
	enrichment := NewEnrichment(db)

	old := models.Booking{
		SalonID: salon.ID, UserID: user.ID,
		Date: dateOn(1), StartTime: "09:00", DurationMinutes: 30,
		Status: models.BookingCompleted, CustomerPhone: "+15550000001",
	}
	recent := models.Booking{
		SalonID: salon.ID, UserID: user.ID,
		Date: dateOn(5), StartTime: "09:00", DurationMinutes: 30,
		Status: models.BookingCompleted, CustomerPhone: "+15550000002",
	}
	elsewhere := models.Booking{
		SalonID: other.ID, UserID: user.ID,
		Date: dateOn(9), StartTime: "09:00", DurationMinutes: 30,
		Status: models.BookingCompleted, CustomerPhone: "+15550000003",
	}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&recent).Error)
	require.NoError(t, db.Create(&elsewhere).Error)

	view, err := enrichment.Resolve(context.Background(), salon.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, "+15550000002", view.Phone)
}

func TestResolve_UnknownUser(t *testing.T) {
	db := openTestDB(t)
	salon := seedSalon(t, db, 5, 5)
	enrichment := NewEnrichment(db)

	_, err := enrichment.Resolve(context.Background(), salon.ID, salon.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
