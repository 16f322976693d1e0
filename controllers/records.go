// controllers/records.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"glowbook-backend/scheduling"
	"glowbook-backend/utils"
)

type RecordsController struct {
	records *scheduling.Records
}

func NewRecordsController(records *scheduling.Records) *RecordsController {
	return &RecordsController{records: records}
}

// UpsertProfileInput defines the JSON structure for saving a CRM profile
type UpsertProfileInput struct {
	UserID         uuid.UUID  `json:"userId" binding:"required"`
	FullName       string     `json:"fullName"`
	Phone          string     `json:"phone"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	SkinType       string     `json:"skinType"`
	SkinIssues     string     `json:"skinIssues"`
	AllergyRecords string     `json:"allergyRecords"`
}

// UpsertProfile creates or replaces the salon's profile for a customer.
// At most one row per (customer, salon) pair.
func (rc *RecordsController) UpsertProfile(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input UpsertProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	profile, err := rc.records.UpsertProfile(c.Request.Context(), scheduling.UpsertProfileInput{
		UserID:         input.UserID,
		SalonID:        salonUUID,
		FullName:       input.FullName,
		Phone:          input.Phone,
		DateOfBirth:    input.DateOfBirth,
		SkinType:       input.SkinType,
		SkinIssues:     input.SkinIssues,
		AllergyRecords: input.AllergyRecords,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetProfile retrieves the salon's profile for a customer
func (rc *RecordsController) GetProfile(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	userUUID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	profile, err := rc.records.GetProfile(c.Request.Context(), salonUUID, userUUID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpsertTreatmentInput defines the JSON structure for saving a treatment record
type UpsertTreatmentInput struct {
	BookingID *uuid.UUID `json:"bookingId"`
	UserID    *uuid.UUID `json:"userId"`

	ServiceNameManual string     `json:"serviceNameManual"`
	RecordDate        *time.Time `json:"recordDate"`

	TreatmentDetails          string     `json:"treatmentDetails"`
	ProductsUsed              string     `json:"productsUsed"`
	SkinReaction              string     `json:"skinReaction"`
	ImprovementNotes          string     `json:"improvementNotes"`
	RecommendedNextTreatment  string     `json:"recommendedNextTreatment"`
	PostTreatmentInstructions string     `json:"postTreatmentInstructions"`
	FollowUpReminderDate      *time.Time `json:"followUpReminderDate"`
	MarketingNotes            string     `json:"marketingNotes"`
}

// UpsertTreatment creates or replaces a treatment record. A booking id
// implies the salon and customer; manual records need userId.
func (rc *RecordsController) UpsertTreatment(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input UpsertTreatmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceInput := scheduling.UpsertTreatmentInput{
		BookingID:                 input.BookingID,
		SalonID:                   salonUUID,
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
	if input.UserID != nil {
		serviceInput.UserID = *input.UserID
	}

	record, err := rc.records.UpsertTreatment(c.Request.Context(), serviceInput)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetTreatment retrieves the treatment record for a booking
func (rc *RecordsController) GetTreatment(c *gin.Context) {
	if _, ok := salonFromContext(c); !ok {
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	record, err := rc.records.GetTreatmentByBooking(c.Request.Context(), bookingUUID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
