package scheduling

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"glowbook-backend/models"
	"glowbook-backend/utils"
)

// Sweeper cancels pending bookings whose date has passed without a
// confirmation, so abandoned requests stop holding conflict windows.
// pending -> cancelled is a legal lifecycle transition; confirmed rows
// are left for the salon to complete or cancel by hand.
type Sweeper struct {
	db *gorm.DB
}

func NewSweeper(db *gorm.DB) *Sweeper {
	return &Sweeper{db: db}
}

func (s *Sweeper) StartScheduler() {
	c := cron.New()

	// Run every day at 2 AM
	c.AddFunc("0 2 * * *", func() {
		if err := s.SweepStalePending(context.Background()); err != nil {
			log.Printf("Stale booking sweep failed: %v", err)
		}
	})

	c.Start()
	log.Println("Booking sweeper started")
}

// SweepStalePending bulk-cancels pending bookings dated before today.
func (s *Sweeper) SweepStalePending(ctx context.Context) error {
	today := utils.NormalizeDate(time.Now())
	now := time.Now()

	res := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ? AND date < ?", models.BookingPending, today).
		Updates(map[string]interface{}{
			"status":       models.BookingCancelled,
			"cancelled_at": now,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected > 0 {
		log.Printf("Cancelled %d stale pending bookings", res.RowsAffected)
	}
	return nil
}
