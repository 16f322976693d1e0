package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glowbook-backend/models"
)

// Records handles the salon's CRM annotations: customer profiles and
// treatment records. Writes are create-or-replace by natural key —
// (user, salon) for profiles, booking id for treatment records — so a
// repeat save replaces the row instead of duplicating it.
type Records struct {
	db *gorm.DB
}

func NewRecords(db *gorm.DB) *Records {
	return &Records{db: db}
}

type UpsertProfileInput struct {
	UserID  uuid.UUID
	SalonID uuid.UUID

	FullName       string
	Phone          string
	DateOfBirth    *time.Time
	SkinType       string
	SkinIssues     string
	AllergyRecords string
}

func (r *Records) UpsertProfile(ctx context.Context, input UpsertProfileInput) (*models.CustomerSalonProfile, error) {
	if input.UserID == uuid.Nil || input.SalonID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	profile := models.CustomerSalonProfile{
		UserID:         input.UserID,
		SalonID:        input.SalonID,
		FullName:       input.FullName,
		Phone:          input.Phone,
		DateOfBirth:    input.DateOfBirth,
		SkinType:       input.SkinType,
		SkinIssues:     input.SkinIssues,
		AllergyRecords: input.AllergyRecords,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "salon_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "phone", "date_of_birth",
				"skin_type", "skin_issues", "allergy_records", "updated_at",
			}),
		}).
		Create(&profile).Error
	if err != nil {
		return nil, err
	}

	return r.GetProfile(ctx, input.SalonID, input.UserID)
}

func (r *Records) GetProfile(ctx context.Context, salonID, userID uuid.UUID) (*models.CustomerSalonProfile, error) {
	var profile models.CustomerSalonProfile
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND user_id = ?", salonID, userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

type UpsertTreatmentInput struct {
	BookingID *uuid.UUID
	UserID    uuid.UUID
	SalonID   uuid.UUID

	ServiceNameManual string
	RecordDate        *time.Time

	TreatmentDetails          string
	ProductsUsed              string
	SkinReaction              string
	ImprovementNotes          string
	RecommendedNextTreatment  string
	PostTreatmentInstructions string
	FollowUpReminderDate      *time.Time
	MarketingNotes            string
}

// UpsertTreatment saves a treatment record. When a booking is named, the
// salon and customer are taken from it and the record replaces any prior
// record for that booking. Manual records need the (user, salon) pair
// spelled out and always insert a fresh row.
func (r *Records) UpsertTreatment(ctx context.Context, input UpsertTreatmentInput) (*models.TreatmentRecord, error) {
	if input.BookingID != nil {
		var booking models.Booking
		if err := r.db.WithContext(ctx).First(&booking, "id = ?", *input.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		input.SalonID = booking.SalonID
		input.UserID = booking.UserID
	}
	if input.UserID == uuid.Nil || input.SalonID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	record := models.TreatmentRecord{
		BookingID:                 input.BookingID,
		UserID:                    input.UserID,
		SalonID:                   input.SalonID,
		ServiceNameManual:         input.ServiceNameManual,
		RecordDate:                input.RecordDate,
		TreatmentDetails:          input.TreatmentDetails,
		ProductsUsed:              input.ProductsUsed,
		SkinReaction:              input.SkinReaction,
		ImprovementNotes:          input.ImprovementNotes,
		RecommendedNextTreatment:  input.RecommendedNextTreatment,
		PostTreatmentInstructions: input.PostTreatmentInstructions,
		FollowUpReminderDate:      input.FollowUpReminderDate,
		MarketingNotes:            input.MarketingNotes,
	}

	q := r.db.WithContext(ctx)
	if input.BookingID != nil {
		q = q.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "booking_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"service_name_manual", "record_date", "treatment_details",
				"products_used", "skin_reaction", "improvement_notes",
				"recommended_next_treatment", "post_treatment_instructions",
				"follow_up_reminder_date", "marketing_notes", "updated_at",
			}),
		})
	}
	if err := q.Create(&record).Error; err != nil {
		return nil, err
	}

	if input.BookingID != nil {
		return r.GetTreatmentByBooking(ctx, *input.BookingID)
	}
	return &record, nil
}

func (r *Records) GetTreatmentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.TreatmentRecord, error) {
	var record models.TreatmentRecord
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ListTreatments returns a customer's treatment history at the salon,
// newest first.
func (r *Records) ListTreatments(ctx context.Context, salonID, userID uuid.UUID) ([]models.TreatmentRecord, error) {
	var records []models.TreatmentRecord
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND user_id = ?", salonID, userID).
		Order("record_date DESC, created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
