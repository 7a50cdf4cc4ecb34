package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthCookieName is the httpOnly cookie carrying the staff JWT.
const AuthCookieName = "token"

// activityTouchInterval throttles last_active_at writes.
const activityTouchInterval = time.Minute

// TokenFromRequest reads the JWT from the cookie, falling back to the Bearer header.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(AuthCookieName); err == nil && token != "" {
		return token
	}
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// StaffAuthMiddleware validates the staff token and loads the account into the context.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			c.Abort()
			return
		}

		claims, err := services.VerifyStaffJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		active, err := services.GetSessionService().IsActive(ctx, token)
		if err != nil {
			log.Printf("[auth] session lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			c.Abort()
			return
		}
		if !active {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session expired"))
			c.Abort()
			return
		}

		var user models.User
		if err := config.CmsGorm.WithContext(ctx).First(&user, "id = ?", claims.StaffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - account not found"))
			} else {
				log.Printf("[auth] failed to load staff %s: %v", claims.StaffID, err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			}
			c.Abort()
			return
		}

		if user.IsBlocked {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Your account has been blocked"))
			c.Abort()
			return
		}
		if !models.IsStaffRole(user.Role) {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - staff access required"))
			c.Abort()
			return
		}

		if user.LastActiveAt == nil || time.Since(*user.LastActiveAt) >= activityTouchInterval {
			if err := services.GetSessionService().Touch(ctx, user.ID, token); err != nil {
				log.Printf("[auth] failed to update session activity: %v", err)
			}
		}

		c.Set("staffID", user.ID)
		c.Set("staffEmail", user.Email)
		c.Set("staffRole", user.Role)
		c.Set("staffUser", &user)
		c.Set("staffToken", token)

		c.Next()
	}
}

// RequireRoles lets the request through only for the listed roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString("staffRole")
		if !allowed[role] {
			log.Printf("[auth] role %q denied for %s %s", role, c.Request.Method, c.FullPath())
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - insufficient role"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetStaffID returns the authenticated staff id.
func GetStaffID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("staffID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// StaffIDPtr is GetStaffID as an optional value for updated_by style columns.
func StaffIDPtr(c *gin.Context) *uuid.UUID {
	id, ok := GetStaffID(c)
	if !ok {
		return nil
	}
	return &id
}

// GetStaffUser returns the authenticated staff account.
func GetStaffUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("staffUser")
	if !exists {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}
