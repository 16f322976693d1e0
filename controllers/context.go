package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"glowbook-backend/scheduling"
	"glowbook-backend/utils"
)

// actorFromContext rebuilds the verified identity the auth middleware
// stored on the request. Customers carry no salon claim; their salon id
// stays nil.
func actorFromContext(c *gin.Context) (scheduling.Actor, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return scheduling.Actor{}, false
	}
	raw, ok := userID.(string)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return scheduling.Actor{}, false
	}
	userUUID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return scheduling.Actor{}, false
	}

	actor := scheduling.Actor{UserID: userUUID}

	if role, exists := c.Get("role"); exists {
		if r, ok := role.(string); ok {
			actor.Role = r
		}
	}
	if actor.Role == "" {
		actor.Role = scheduling.RoleCustomer
	}

	if salonID, exists := c.Get("salonId"); exists {
		if s, ok := salonID.(string); ok && s != "" {
			if salonUUID, err := uuid.Parse(s); err == nil {
				actor.SalonID = salonUUID
			}
		}
	}

	return actor, true
}

// salonFromContext is for salon-scoped routes that require a staff token.
func salonFromContext(c *gin.Context) (uuid.UUID, bool) {
	salonID, exists := c.Get("salonId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return uuid.Nil, false
	}
	s, ok := salonID.(string)
	if !ok || s == "" {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return uuid.Nil, false
	}
	salonUUID, err := uuid.Parse(s)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Salon ID not found in context")
		return uuid.Nil, false
	}
	return salonUUID, true
}

// respondSchedulingError maps the engine's classified outcomes onto HTTP
// statuses. Unclassified errors stay opaque 500s.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrTenantNotApproved):
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, scheduling.ErrForbidden):
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, scheduling.ErrSlotConflict):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, scheduling.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, scheduling.ErrQuotaExceeded):
		utils.RespondWithError(c, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, scheduling.ErrUnknownService),
		errors.Is(err, scheduling.ErrUnknownStaff),
		errors.Is(err, scheduling.ErrStaffNotQualified),
		errors.Is(err, scheduling.ErrInvalidInput):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, scheduling.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
