package staff_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errSelfAction = errors.New("cannot apply this action to your own account")

// loadUser reads the :id user, answering 400/404/500 itself on failure.
func loadUser(c *gin.Context, ctx context.Context, op string) (*models.User, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid user ID"))
		return nil, false
	}

	var user models.User
	if err := config.CmsGorm.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
			return nil, false
		}
		log.Printf("[users.%s] ❌ database error: %v", op, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return nil, false
	}
	return &user, true
}

func emailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	var count int64
	q := config.CmsGorm.WithContext(ctx).Model(&models.User{}).Where("email = ?", models.NormalizeEmail(email))
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

type orderTotals struct {
	CustomerID uuid.UUID
	Count      int64
	Total      float64
}

// withOrderTotals converts users to responses, filling order count and spend for customers.
func withOrderTotals(ctx context.Context, users []models.User) ([]models.UserResponse, error) {
	out := make([]models.UserResponse, len(users))
	var customerIDs []uuid.UUID
	for i := range users {
		out[i] = users[i].ToResponse()
		if users[i].Role == models.RoleUser {
			customerIDs = append(customerIDs, users[i].ID)
		}
	}
	if len(customerIDs) == 0 {
		return out, nil
	}

	var rows []orderTotals
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.Order{}).
		Select("customer_id, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total").
		Where("customer_id IN ?", customerIDs).
		Group("customer_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	byCustomer := make(map[uuid.UUID]orderTotals, len(rows))
	for _, r := range rows {
		byCustomer[r.CustomerID] = r
	}
	for i := range out {
		if t, ok := byCustomer[out[i].ID]; ok {
			out[i].OrderCount = t.Count
			out[i].OrderTotal = t.Total
		}
	}
	return out, nil
}
