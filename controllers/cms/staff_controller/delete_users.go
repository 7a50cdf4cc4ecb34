package staff_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errMissingUsers = errors.New("users not found")

// existingUsers splits ids into those that exist and those that do not.
func existingUsers(tx *gorm.DB, ids []uuid.UUID) (found, missing []uuid.UUID, err error) {
	if err = tx.Model(&models.User{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, nil, err
	}
	present := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		present[id] = true
	}
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if !present[id] && !seen[id] {
			missing = append(missing, id)
		}
		seen[id] = true
	}
	return found, missing, nil
}

func writeBulkError(c *gin.Context, op string, err error, result models.BulkResult) {
	if errors.Is(err, errMissingUsers) {
		resp := models.ErrorResponse(c, "Some users were not found, nothing was changed")
		resp.Data = result
		c.JSON(http.StatusNotFound, resp)
		return
	}
	log.Printf("[users.%s] ❌ %v", op, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
}

// DeleteUsers godoc
// @Summary Delete users
// @Description All or nothing. Sessions and notifications of the users are removed too. An admin cannot delete themself.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.UserIDsRequest true "User ids"
// @Success 200 {object} models.ApiResponse{data=models.BulkResult}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Missing ids, nothing deleted"
// @Router /admin/users [delete]
func DeleteUsers(c *gin.Context) {
	var req models.UserIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	staffID, _ := middleware.GetStaffID(c)
	if containsID(req.UserIDs, staffID) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, errSelfAction.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var result models.BulkResult
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, missing, err := existingUsers(tx, req.UserIDs)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			result.Missing = missing
			return errMissingUsers
		}
		if err := tx.Where("user_id IN ?", found).Delete(&models.StaffSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id IN ?", found).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", found).Delete(&models.User{}).Error; err != nil {
			return err
		}
		result.Affected = found
		return nil
	})
	if err != nil {
		writeBulkError(c, "delete", err, result)
		return
	}

	log.Printf("[users.delete] ✅ %d users deleted", len(result.Affected))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Users deleted successfully", result))
}
