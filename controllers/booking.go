// controllers/booking.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"glowbook-backend/models"
	"glowbook-backend/scheduling"
	"glowbook-backend/utils"
)

type BookingController struct {
	bookings *scheduling.BookingService
}

func NewBookingController(bookings *scheduling.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	SalonID           uuid.UUID  `json:"salonId" binding:"required"`
	UserID            *uuid.UUID `json:"userId"`
	ServiceID         *uuid.UUID `json:"serviceId"`
	ServiceNameManual string     `json:"serviceNameManual"`
	DurationManual    int        `json:"durationManual"`
	StaffID           *uuid.UUID `json:"staffId"`
	Date              time.Time  `json:"date" binding:"required"`
	StartTime         string     `json:"startTime" binding:"required"`
	CustomerName      string     `json:"customerName"`
	CustomerPhone     string     `json:"customerPhone"`
	CustomerEmail     string     `json:"customerEmail"`
	Notes             string     `json:"notes"`
}

// CreateBooking creates a new appointment. Customer tokens book for
// themselves in pending; salon tokens enter walk-ins, which start
// confirmed.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	origin := models.OriginCustomer
	userID := actor.UserID
	if actor.Role != scheduling.RoleCustomer {
		origin = models.OriginStaffEntered
		if actor.SalonID != input.SalonID {
			utils.RespondWithError(c, http.StatusForbidden, "Cannot book for another salon")
			return
		}
		if input.UserID == nil {
			utils.RespondWithError(c, http.StatusBadRequest, "userId is required for walk-in bookings")
			return
		}
		userID = *input.UserID
	}

	booking, err := bc.bookings.Create(c.Request.Context(), scheduling.CreateBookingInput{
		SalonID:           input.SalonID,
		UserID:            userID,
		ServiceID:         input.ServiceID,
		ServiceNameManual: input.ServiceNameManual,
		DurationManual:    input.DurationManual,
		StaffID:           input.StaffID,
		Date:              input.Date,
		StartTime:         input.StartTime,
		Origin:            origin,
		CustomerName:      input.CustomerName,
		CustomerPhone:     input.CustomerPhone,
		CustomerEmail:     input.CustomerEmail,
		Notes:             input.Notes,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// UpdateBookingStatusInput carries the requested lifecycle transition
type UpdateBookingStatusInput struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateBookingStatus transitions a booking through its lifecycle
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.bookings.Transition(c.Request.Context(), bookingUUID, input.Status, actor)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// GetBookings retrieves the salon's bookings, optionally filtered by
// user, staff or date.
func (bc *BookingController) GetBookings(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var filter scheduling.BookingFilter
	if v := c.Query("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid user_id format")
			return
		}
		filter.UserID = &id
	}
	if v := c.Query("staff_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff_id format")
			return
		}
		filter.StaffID = &id
	}
	if v := c.Query("date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}

	bookings, err := bc.bookings.List(c.Request.Context(), salonUUID, filter)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
