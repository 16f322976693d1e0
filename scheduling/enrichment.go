package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"glowbook-backend/models"
)

// CustomerView is the merged read-side picture of a customer as one salon
// sees them.
type CustomerView struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`

	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	SkinType       string     `json:"skin_type,omitempty"`
	SkinIssues     string     `json:"skin_issues,omitempty"`
	AllergyRecords string     `json:"allergy_records,omitempty"`
}

// Enrichment builds CustomerViews by overlaying, field by field, the thin
// identity record with contact details harvested from the most recent
// booking and then from the salon's CRM profile. A field filled by a
// higher-priority source is never overwritten. Pure reads; nothing is
// mutated.
type Enrichment struct {
	db *gorm.DB
}

func NewEnrichment(db *gorm.DB) *Enrichment {
	return &Enrichment{db: db}
}

func (e *Enrichment) Resolve(ctx context.Context, salonID, userID uuid.UUID) (*CustomerView, error) {
	var user models.User
	if err := e.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	view := &CustomerView{
		UserID:    user.ID,
		Name:      user.Name,
		Phone:     user.Phone,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	}

	var latest models.Booking
	err := e.db.WithContext(ctx).
		Where("salon_id = ? AND user_id = ?", salonID, userID).
		Order("date DESC, start_time DESC").
		First(&latest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		fillIfEmpty(&view.Name, latest.CustomerName)
		fillIfEmpty(&view.Phone, latest.CustomerPhone)
		fillIfEmpty(&view.Email, latest.CustomerEmail)
	}

	var profile models.CustomerSalonProfile
	err = e.db.WithContext(ctx).
		Where("salon_id = ? AND user_id = ?", salonID, userID).
		First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil {
		fillIfEmpty(&view.Name, profile.FullName)
		fillIfEmpty(&view.Phone, profile.Phone)
		view.DateOfBirth = profile.DateOfBirth
		view.SkinType = profile.SkinType
		view.SkinIssues = profile.SkinIssues
		view.AllergyRecords = profile.AllergyRecords
	}

	return view, nil
}

func fillIfEmpty(dst *string, src string) {
	if *dst == "" && src != "" {
		*dst = src
	}
}
