// controllers/staff.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"glowbook-backend/scheduling"
	"glowbook-backend/utils"
)

type StaffController struct {
	directory *scheduling.Directory
}

func NewStaffController(directory *scheduling.Directory) *StaffController {
	return &StaffController{directory: directory}
}

// CreateStaffInput defines the expected JSON structure for adding staff
type CreateStaffInput struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Password             string `json:"password"`
	Role                 string `json:"role"`
	CommissionPercentage int    `json:"commissionPercentage"`
}

// CreateStaff adds a staff member, subject to the subscription plan's
// staff ceiling.
func (sc *StaffController) CreateStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateCommission(input.CommissionPercentage) {
		utils.RespondWithError(c, http.StatusBadRequest, "Commission percentage must be between 0 and 100")
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	staff, err := sc.directory.CreateStaff(c.Request.Context(), scheduling.CreateStaffInput{
		SalonID:              salonUUID,
		Name:                 input.Name,
		Email:                input.Email,
		Phone:                input.Phone,
		Password:             input.Password,
		Role:                 input.Role,
		CommissionPercentage: input.CommissionPercentage,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// UpdateStaffInput defines the expected JSON structure for updating staff
type UpdateStaffInput struct {
	Name                 *string `json:"name"`
	Email                *string `json:"email"`
	Phone                *string `json:"phone"`
	CommissionPercentage *int    `json:"commissionPercentage"`
	IsActive             *bool   `json:"isActive"`
}

// UpdateStaff updates mutable staff fields
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CommissionPercentage != nil && !utils.ValidateCommission(*input.CommissionPercentage) {
		utils.RespondWithError(c, http.StatusBadRequest, "Commission percentage must be between 0 and 100")
		return
	}

	staff, err := sc.directory.UpdateStaff(c.Request.Context(), salonUUID, staffUUID, scheduling.UpdateStaffInput{
		Name:                 input.Name,
		Email:                input.Email,
		Phone:                input.Phone,
		CommissionPercentage: input.CommissionPercentage,
		IsActive:             input.IsActive,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}

// SyncServicesInput carries the full replacement assignment set
type SyncServicesInput struct {
	ServiceIDs []uuid.UUID `json:"serviceIds"`
}

// SyncServices replaces the staff member's service assignments with
// exactly the submitted set.
func (sc *StaffController) SyncServices(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	staffUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var input SyncServicesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := sc.directory.AssignServices(c.Request.Context(), salonUUID, staffUUID, input.ServiceIDs); err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service assignments updated"})
}

// GetStaff retrieves the salon's staff roster
func (sc *StaffController) GetStaff(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	includeInactive := c.Query("include_inactive") == "true"

	staff, err := sc.directory.ListForSalon(c.Request.Context(), salonUUID, includeInactive)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}
