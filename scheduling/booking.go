package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"glowbook-backend/models"
	"glowbook-backend/utils"
)

// Actor is the verified identity attached to a request by the auth layer.
type Actor struct {
	UserID  uuid.UUID
	SalonID uuid.UUID
	Role    string
}

const (
	RoleOwner    = "owner"
	RoleManager  = "manager"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
)

func (a Actor) isSalonRole() bool {
	return a.Role == RoleOwner || a.Role == RoleManager || a.Role == RoleStaff
}

// BookingService owns the appointment lifecycle: creation under the
// conflict checker, and status transitions against the lifecycle table.
type BookingService struct {
	db        *gorm.DB
	conflicts *ConflictChecker
	directory *Directory
	locks     *TenantLocks
}

func NewBookingService(db *gorm.DB, conflicts *ConflictChecker, directory *Directory, locks *TenantLocks) *BookingService {
	return &BookingService{db: db, conflicts: conflicts, directory: directory, locks: locks}
}

type CreateBookingInput struct {
	SalonID uuid.UUID
	UserID  uuid.UUID

	// ServiceID references the catalogue. Legacy/manual entries leave it
	// nil and carry ServiceNameManual plus DurationManual instead.
	ServiceID         *uuid.UUID
	ServiceNameManual string
	DurationManual    int

	StaffID *uuid.UUID

	Date      time.Time
	StartTime string // "HH:MM"

	Origin models.BookingOrigin

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Notes         string
}

// Create validates the salon, resolves the slot duration, checks the slot
// for conflicts and inserts the booking, all inside one transaction under
// the salon's lock. Self-service bookings start pending; front-desk
// walk-ins start confirmed.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	startMin, err := utils.ParseClockMinutes(input.StartTime)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if input.Date.IsZero() || input.UserID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	origin := input.Origin
	if origin == "" {
		origin = models.OriginCustomer
	}

	lock := s.locks.forSalon(input.SalonID)
	lock.Lock()
	defer lock.Unlock()

	var booking *models.Booking
	err = withRetry(func() error {
		tx := s.db.WithContext(ctx).Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		var salon models.Salon
		if err := tx.First(&salon, "id = ?", input.SalonID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if salon.ApprovalStatus != models.ApprovalApproved {
			tx.Rollback()
			return ErrTenantNotApproved
		}

		duration := input.DurationManual
		if input.ServiceID != nil {
			var service models.Service
			if err := tx.Where("salon_id = ? AND id = ?", input.SalonID, *input.ServiceID).
				First(&service).Error; err != nil {
				tx.Rollback()
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownService
				}
				return err
			}
			duration = service.Duration
		}
		if duration <= 0 {
			tx.Rollback()
			return ErrInvalidInput
		}

		if input.StaffID != nil {
			var staff models.Staff
			if err := tx.Where("salon_id = ? AND id = ?", input.SalonID, *input.StaffID).
				First(&staff).Error; err != nil {
				tx.Rollback()
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownStaff
				}
				return err
			}

			if input.ServiceID != nil {
				qualified, err := s.directory.isQualified(ctx, tx, *input.StaffID, *input.ServiceID)
				if err != nil {
					tx.Rollback()
					return err
				}
				if !qualified {
					tx.Rollback()
					return ErrStaffNotQualified
				}
			}
		}

		conflict, err := s.conflicts.HasConflict(ctx, tx, input.SalonID, input.StaffID, input.Date, startMin, duration)
		if err != nil {
			tx.Rollback()
			return err
		}
		if conflict {
			tx.Rollback()
			return ErrSlotConflict
		}

		status := models.BookingPending
		var confirmedAt *time.Time
		if origin == models.OriginStaffEntered {
			status = models.BookingConfirmed
			now := time.Now()
			confirmedAt = &now
		}

		booking = &models.Booking{
			SalonID:           input.SalonID,
			UserID:            input.UserID,
			ServiceID:         input.ServiceID,
			ServiceNameManual: input.ServiceNameManual,
			DurationManual:    input.DurationManual,
			StaffID:           input.StaffID,
			Date:              utils.NormalizeDate(input.Date),
			StartTime:         utils.FormatClockMinutes(startMin),
			DurationMinutes:   duration,
			Status:            status,
			Origin:            origin,
			CustomerName:      input.CustomerName,
			CustomerPhone:     input.CustomerPhone,
			CustomerEmail:     input.CustomerEmail,
			Notes:             input.Notes,
			ConfirmedAt:       confirmedAt,
		}
		if err := tx.Create(booking).Error; err != nil {
			tx.Rollback()
			return err
		}

		return tx.Commit().Error
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Transition moves a booking to target if the lifecycle table permits it
// and the actor may request it. Customers may only cancel their own
// pending or confirmed booking; salon roles may drive any legal
// transition for their salon.
func (s *BookingService) Transition(ctx context.Context, bookingID uuid.UUID, target models.BookingStatus, actor Actor) (*models.Booking, error) {
	if !target.ValidStatus() {
		return nil, ErrInvalidInput
	}

	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch {
	case actor.Role == RoleCustomer:
		if booking.UserID != actor.UserID || target != models.BookingCancelled {
			return nil, ErrForbidden
		}
	case actor.isSalonRole():
		if booking.SalonID != actor.SalonID {
			return nil, ErrNotFound
		}
	default:
		return nil, ErrForbidden
	}

	if !booking.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	updates := map[string]interface{}{"status": target}
	switch target {
	case models.BookingConfirmed:
		updates["confirmed_at"] = now
	case models.BookingCancelled:
		updates["cancelled_at"] = now
	case models.BookingCompleted:
		updates["completed_at"] = now
	}

	// Guard on the status we read so a concurrent transition loses cleanly
	// instead of clobbering a terminal state.
	res := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", booking.ID, booking.Status).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidTransition
	}

	if err := s.db.WithContext(ctx).First(&booking, "id = ?", bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

type BookingFilter struct {
	UserID  *uuid.UUID
	StaffID *uuid.UUID
	Date    *time.Time
}

// List returns the salon's bookings, newest day first, optionally
// filtered by customer, staff member or date.
func (s *BookingService) List(ctx context.Context, salonID uuid.UUID, filter BookingFilter) ([]models.Booking, error) {
	q := s.db.WithContext(ctx).
		Preload("Service").
		Where("salon_id = ?", salonID)

	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.StaffID != nil {
		q = q.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.Date != nil {
		q = q.Where("date = ?", utils.NormalizeDate(*filter.Date))
	}

	var bookings []models.Booking
	if err := q.Order("date DESC, start_time DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
