package scheduling

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"glowbook-backend/models"
)

// openTestDB gives each test its own in-memory database with the full
// schema migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Salon{},
		&models.SubscriptionPlan{},
		&models.Subscription{},
		&models.User{},
		&models.Staff{},
		&models.Service{},
		&models.ServiceAssignment{},
		&models.Booking{},
		&models.CustomerSalonProfile{},
		&models.TreatmentRecord{},
	))

	return db
}

// seedSalon creates an approved salon with an active plan carrying the
// given ceilings.
func seedSalon(t *testing.T, db *gorm.DB, maxStaff, maxServices int) *models.Salon {
	t.Helper()

	plan := models.SubscriptionPlan{
		Name:        "Standard",
		MaxStaff:    maxStaff,
		MaxServices: maxServices,
	}
	require.NoError(t, db.Create(&plan).Error)

	salon := models.Salon{
		Name:           "Test Salon",
		ApprovalStatus: models.ApprovalApproved,
	}
	require.NoError(t, db.Create(&salon).Error)

	sub := models.Subscription{
		SalonID:          salon.ID,
		PlanID:           plan.ID,
		Status:           models.SubscriptionActive,
		CurrentPeriodEnd: time.Now().AddDate(0, 1, 0),
	}
	require.NoError(t, db.Create(&sub).Error)

	return &salon
}

func seedStaff(t *testing.T, db *gorm.DB, salonID uuid.UUID, name string) *models.Staff {
	t.Helper()
	staff := models.Staff{SalonID: salonID, Name: name, Role: "staff", IsActive: true}
	require.NoError(t, db.Create(&staff).Error)
	return &staff
}

func seedService(t *testing.T, db *gorm.DB, salonID uuid.UUID, name string, duration int) *models.Service {
	t.Helper()
	service := models.Service{
		SalonID:  salonID,
		Name:     name,
		Price:    40,
		Duration: duration,
		IsActive: true,
	}
	require.NoError(t, db.Create(&service).Error)
	return &service
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Email: email}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func assign(t *testing.T, db *gorm.DB, staffID, serviceID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&models.ServiceAssignment{
		StaffID:   staffID,
		ServiceID: serviceID,
	}).Error)
}

// newEngine wires the full component set over one database, as main does.
func newEngine(db *gorm.DB) (*BookingService, *Directory, *QuotaLedger) {
	locks := NewTenantLocks()
	quota := NewQuotaLedger(db)
	directory := NewDirectory(db, quota, locks)
	bookings := NewBookingService(db, NewConflictChecker(db), directory, locks)
	return bookings, directory, quota
}

func dateOn(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}
