package staff_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/middleware"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivateUsers godoc
// @Summary Unblock users
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.UserIDsRequest true "User ids"
// @Success 200 {object} models.ApiResponse{data=models.BulkResult}
// @Failure 404 {object} models.ApiResponse "Missing ids, nothing changed"
// @Router /admin/users/activate [post]
func ActivateUsers(c *gin.Context) {
	setBlocked(c, false)
}

// DeactivateUsers godoc
// @Summary Block users
// @Description Blocked users are signed out everywhere. An admin cannot block themself.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.UserIDsRequest true "User ids and reason"
// @Success 200 {object} models.ApiResponse{data=models.BulkResult}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Missing ids, nothing changed"
// @Router /admin/users/deactivate [post]
func DeactivateUsers(c *gin.Context) {
	setBlocked(c, true)
}

func setBlocked(c *gin.Context, blocked bool) {
	op := "activate"
	if blocked {
		op = "deactivate"
	}

	var req models.UserIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, services.ValidationMessages(err)))
		return
	}

	staffID, _ := middleware.GetStaffID(c)
	if blocked && containsID(req.UserIDs, staffID) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, errSelfAction.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	reason := strings.TrimSpace(req.Reason)
	if !blocked {
		reason = ""
	}

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
		if err := tx.Model(&models.User{}).
			Where("id IN ?", found).
			UpdateColumns(map[string]interface{}{"is_blocked": blocked, "block_reason": reason}).Error; err != nil {
			return err
		}
		result.Affected = found
		return nil
	})
	if err != nil {
		writeBulkError(c, op, err, result)
		return
	}

	if blocked {
		if err := services.GetSessionService().DeactivateAllForUsers(ctx, result.Affected...); err != nil {
			log.Printf("[users.%s] ⚠️ failed to revoke sessions: %v", op, err)
		}
	}
	services.PublishAsync(services.EventStaffStatusChanged, "", map[string]interface{}{
		"user_ids":   result.Affected,
		"is_blocked": blocked,
		"reason":     reason,
		"changed_by": staffID,
	})

	log.Printf("[users.%s] ✅ %d users", op, len(result.Affected))
	message := "Users activated successfully"
	if blocked {
		message = "Users deactivated successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, result))
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
