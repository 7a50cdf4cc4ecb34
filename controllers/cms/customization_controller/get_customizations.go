package customization_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCustomizations godoc
// @Summary List customer customizations
// @Tags Customizations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Status" Enums(draft, confirmed, in-production, completed, cancelled)
// @Param type query string false "Customization type" Enums(mug, birthday-card, anniversary-card, general-card)
// @Param search query string false "Message, product name or customer"
// @Success 200 {object} models.ApiResponse{data=[]models.Customization}
// @Failure 400 {object} models.ApiResponse
// @Router /customizations [get]
func GetCustomizations(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c)

	filter := models.CustomizationFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}
	if filter.Status != "" && !models.ValidCustomizationStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status: "+filter.Status))
		return
	}
	if filter.Type != "" && !models.ValidCustomizationType(filter.Type) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid type: "+filter.Type))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	list, total, err := services.GetCustomizationService().List(ctx, filter, limit, offset)
	if err != nil {
		log.Printf("[customizations.list] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customizations"))
		return
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Customizations fetched successfully", list, models.NewPagination(page, limit, total)))
}

// GetCustomization godoc
// @Summary Get one customization
// @Tags Customizations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customization ID"
// @Success 200 {object} models.ApiResponse{data=models.Customization}
// @Failure 404 {object} models.ApiResponse
// @Router /customizations/{id} [get]
func GetCustomization(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid customization ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	custom, err := services.GetCustomizationService().Get(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrCustomizationNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Customization not found"))
			return
		}
		log.Printf("[customizations.get] ❌ %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch customization"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Customization fetched successfully", gin.H{
		"customization": custom,
		"final_text":    custom.FinalText(),
	}))
}
