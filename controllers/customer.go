// controllers/customer.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"glowbook-backend/scheduling"
	"glowbook-backend/utils"
)

type CustomerController struct {
	enrichment *scheduling.Enrichment
}

func NewCustomerController(enrichment *scheduling.Enrichment) *CustomerController {
	return &CustomerController{enrichment: enrichment}
}

// GetCustomerDetails returns the enriched view of a customer: the thin
// identity overlaid with contact details from their latest booking and
// the salon's CRM profile.
func (cc *CustomerController) GetCustomerDetails(c *gin.Context) {
	salonUUID, ok := salonFromContext(c)
	if !ok {
		return
	}

	userUUID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	view, err := cc.enrichment.Resolve(c.Request.Context(), salonUUID, userUUID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
