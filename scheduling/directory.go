package scheduling

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"glowbook-backend/models"
)

// Directory is the registry of a salon's staff and services, including
// which services each staff member is qualified to perform. Creates run
// behind the quota ledger inside one transaction per salon.
type Directory struct {
	db    *gorm.DB
	quota *QuotaLedger
	locks *TenantLocks
}

func NewDirectory(db *gorm.DB, quota *QuotaLedger, locks *TenantLocks) *Directory {
	return &Directory{db: db, quota: quota, locks: locks}
}

type CreateStaffInput struct {
	SalonID              uuid.UUID
	Name                 string
	Email                string
	Phone                string
	Password             string
	Role                 string
	CommissionPercentage int
}

// CreateStaff inserts a staff member if the salon is approved and below
// its plan's staff ceiling. The quota count and the insert share one
// transaction under the salon's lock, so concurrent creates at the
// ceiling cannot jointly overshoot it.
func (d *Directory) CreateStaff(ctx context.Context, input CreateStaffInput) (*models.Staff, error) {
	if input.Name == "" {
		return nil, ErrInvalidInput
	}
	role := input.Role
	if role == "" {
		role = "staff"
	}

	lock := d.locks.forSalon(input.SalonID)
	lock.Lock()
	defer lock.Unlock()

	var staff *models.Staff
	err := withRetry(func() error {
		tx := d.db.WithContext(ctx).Begin()
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

		ok, err := d.quota.CanAdd(ctx, tx, input.SalonID, ResourceStaff)
		if err != nil {
			tx.Rollback()
			return err
		}
		if !ok {
			tx.Rollback()
			return ErrQuotaExceeded
		}

		staff = &models.Staff{
			SalonID:              input.SalonID,
			Name:                 input.Name,
			Email:                input.Email,
			Phone:                input.Phone,
			Password:             input.Password,
			Role:                 role,
			CommissionPercentage: input.CommissionPercentage,
			IsActive:             true,
		}
		if err := tx.Create(staff).Error; err != nil {
			tx.Rollback()
			return err
		}

		return tx.Commit().Error
	})
	if err != nil {
		return nil, err
	}
	return staff, nil
}

type UpdateStaffInput struct {
	Name                 *string
	Email                *string
	Phone                *string
	CommissionPercentage *int
	IsActive             *bool
}

// UpdateStaff applies the provided fields to a staff member of the salon.
// Deactivation does not free quota; counts are by existence.
func (d *Directory) UpdateStaff(ctx context.Context, salonID, staffID uuid.UUID, input UpdateStaffInput) (*models.Staff, error) {
	var staff models.Staff
	if err := d.db.WithContext(ctx).
		Where("salon_id = ? AND id = ?", salonID, staffID).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownStaff
		}
		return nil, err
	}

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Email != nil {
		staff.Email = *input.Email
	}
	if input.Phone != nil {
		staff.Phone = *input.Phone
	}
	if input.CommissionPercentage != nil {
		staff.CommissionPercentage = *input.CommissionPercentage
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}

	if err := d.db.WithContext(ctx).Save(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

type CreateServiceInput struct {
	SalonID     uuid.UUID
	Name        string
	Description string
	Price       float64
	Duration    int
	Category    string
}

// CreateService inserts a catalogue service behind the plan's service
// ceiling, with the same transactional shape as CreateStaff.
func (d *Directory) CreateService(ctx context.Context, input CreateServiceInput) (*models.Service, error) {
	if input.Name == "" || input.Duration <= 0 {
		return nil, ErrInvalidInput
	}

	lock := d.locks.forSalon(input.SalonID)
	lock.Lock()
	defer lock.Unlock()

	var service *models.Service
	err := withRetry(func() error {
		tx := d.db.WithContext(ctx).Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		ok, err := d.quota.CanAdd(ctx, tx, input.SalonID, ResourceService)
		if err != nil {
			tx.Rollback()
			return err
		}
		if !ok {
			tx.Rollback()
			return ErrQuotaExceeded
		}

		service = &models.Service{
			SalonID:     input.SalonID,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Duration:    input.Duration,
			Category:    input.Category,
			IsActive:    true,
		}
		if err := tx.Create(service).Error; err != nil {
			tx.Rollback()
			return err
		}

		return tx.Commit().Error
	})
	if err != nil {
		return nil, err
	}
	return service, nil
}

// AssignServices replaces a staff member's service assignments with
// exactly the given set. The delete and the inserts run in one
// transaction: a failure part-way leaves the prior set intact rather than
// an empty one.
func (d *Directory) AssignServices(ctx context.Context, salonID, staffID uuid.UUID, serviceIDs []uuid.UUID) error {
	var staff models.Staff
	if err := d.db.WithContext(ctx).
		Where("salon_id = ? AND id = ?", salonID, staffID).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownStaff
		}
		return err
	}

	tx := d.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Every referenced service must live in the same salon.
	if len(serviceIDs) > 0 {
		var count int64
		if err := tx.Model(&models.Service{}).
			Where("salon_id = ? AND id IN ?", salonID, serviceIDs).
			Count(&count).Error; err != nil {
			tx.Rollback()
			return err
		}
		if int(count) != len(serviceIDs) {
			tx.Rollback()
			return ErrUnknownService
		}
	}

	if err := tx.Where("staff_id = ?", staffID).
		Delete(&models.ServiceAssignment{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	for _, serviceID := range serviceIDs {
		assignment := models.ServiceAssignment{StaffID: staffID, ServiceID: serviceID}
		if err := tx.Create(&assignment).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// IsQualified reports whether the staff member holds an assignment for the
// service.
func (d *Directory) IsQualified(ctx context.Context, staffID, serviceID uuid.UUID) (bool, error) {
	return d.isQualified(ctx, d.db, staffID, serviceID)
}

func (d *Directory) isQualified(ctx context.Context, tx *gorm.DB, staffID, serviceID uuid.UUID) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&models.ServiceAssignment{}).
		Where("staff_id = ? AND service_id = ?", staffID, serviceID).
		Count(&count).Error
	return count > 0, err
}

// ListForSalon returns the salon's staff roster, optionally including
// inactive members, with assignments preloaded.
func (d *Directory) ListForSalon(ctx context.Context, salonID uuid.UUID, includeInactive bool) ([]models.Staff, error) {
	q := d.db.WithContext(ctx).
		Preload("Assignments").
		Where("salon_id = ?", salonID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var staff []models.Staff
	if err := q.Order("name ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// ListServices returns the salon's service catalogue.
func (d *Directory) ListServices(ctx context.Context, salonID uuid.UUID, includeInactive bool) ([]models.Service, error) {
	q := d.db.WithContext(ctx).Where("salon_id = ?", salonID)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

type UpdateServiceInput struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *int
	Category    *string
	IsActive    *bool
}

// UpdateService applies the provided fields to a service of the salon.
func (d *Directory) UpdateService(ctx context.Context, salonID, serviceID uuid.UUID, input UpdateServiceInput) (*models.Service, error) {
	var service models.Service
	if err := d.db.WithContext(ctx).
		Where("salon_id = ? AND id = ?", salonID, serviceID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownService
		}
		return nil, err
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := d.db.WithContext(ctx).Save(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}
