package customization_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateCustomizationStatus godoc
// @Summary Moderate a customization
// @Description Any status may follow any other. The customer is notified when the status changes.
// @Tags Customizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customization ID"
// @Param body body models.CustomizationStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Customization}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /customizations/{id}/status [patch]
func UpdateCustomizationStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customization ID"))
		return
	}
	var req models.CustomizationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Status is required"))
		return
	}
	if !models.ValidCustomizationStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status: "+req.Status))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	custom, previous, err := services.GetCustomizationService().UpdateStatus(ctx, id, req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrCustomizationNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customization not found"))
			return
		}
		log.Printf("[customizations.status] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update customization"))
		return
	}

	log.Printf("[customizations.status] ✅ %s: %s → %s", custom.ID, previous, custom.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customization status updated successfully", custom))
}
