package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"glowbook-backend/models"
)

type ResourceKind string

const (
	ResourceStaff   ResourceKind = "staff"
	ResourceService ResourceKind = "service"
)

// QuotaLedger answers "may this salon add one more X?" against the
// ceilings of its active subscription plan. Counts are taken live; a
// salon with no usable plan gets zero allowance, since an unconfigured
// plan is a misconfiguration and not a grant of unlimited resources.
type QuotaLedger struct {
	db *gorm.DB
}

func NewQuotaLedger(db *gorm.DB) *QuotaLedger {
	return &QuotaLedger{db: db}
}

// CanAdd reports whether the salon is below its ceiling for kind. Callers
// about to insert must pass their open transaction and hold the salon's
// tenant lock; the count is only trustworthy inside the same unit as the
// write it gates.
func (q *QuotaLedger) CanAdd(ctx context.Context, tx *gorm.DB, salonID uuid.UUID, kind ResourceKind) (bool, error) {
	if tx == nil {
		tx = q.db
	}

	max, err := q.ceiling(ctx, tx, salonID, kind)
	if err != nil {
		return false, err
	}

	current, err := q.countCurrent(ctx, tx, salonID, kind)
	if err != nil {
		return false, err
	}

	return current < max, nil
}

// CountCurrent returns the number of live rows of kind for the salon.
// Inactive rows still count: quota is by existence, not by active flag.
func (q *QuotaLedger) CountCurrent(ctx context.Context, salonID uuid.UUID, kind ResourceKind) (int, error) {
	return q.countCurrent(ctx, q.db, salonID, kind)
}

func (q *QuotaLedger) countCurrent(ctx context.Context, tx *gorm.DB, salonID uuid.UUID, kind ResourceKind) (int, error) {
	var count int64
	var err error
	switch kind {
	case ResourceStaff:
		err = tx.WithContext(ctx).Model(&models.Staff{}).
			Where("salon_id = ?", salonID).Count(&count).Error
	case ResourceService:
		err = tx.WithContext(ctx).Model(&models.Service{}).
			Where("salon_id = ?", salonID).Count(&count).Error
	default:
		err = errors.New("unknown resource kind")
	}
	return int(count), err
}

// ceiling resolves the plan limit for kind from the salon's active,
// unexpired subscription.
func (q *QuotaLedger) ceiling(ctx context.Context, tx *gorm.DB, salonID uuid.UUID, kind ResourceKind) (int, error) {
	var sub models.Subscription
	err := tx.WithContext(ctx).
		Preload("Plan").
		Where("salon_id = ? AND status = ?", salonID, models.SubscriptionActive).
		Order("current_period_end DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if !sub.CurrentPeriodEnd.IsZero() && sub.CurrentPeriodEnd.Before(time.Now()) {
		return 0, nil
	}

	switch kind {
	case ResourceStaff:
		return sub.Plan.MaxStaff, nil
	case ResourceService:
		return sub.Plan.MaxServices, nil
	default:
		return 0, errors.New("unknown resource kind")
	}
}
