package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
)

const unreadCountTTL = 5 * time.Minute

// NotificationService persists notifications and pushes them over the socket.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotificationInput describes one notification for one or many recipients.
type NotificationInput struct {
	Title        string
	Message      string
	Type         string
	Priority     string
	RelatedID    string
	RelatedModel string
	ActionURL    string
	Metadata     map[string]interface{}
}

func (in NotificationInput) build(userID uuid.UUID) *models.Notification {
	n := &models.Notification{
		UserID:       userID,
		Title:        in.Title,
		Message:      in.Message,
		Type:         in.Type,
		Priority:     in.Priority,
		RelatedID:    in.RelatedID,
		RelatedModel: in.RelatedModel,
		ActionURL:    in.ActionURL,
	}
	if len(in.Metadata) > 0 {
		if raw, err := json.Marshal(in.Metadata); err == nil {
			n.Metadata = datatypes.JSON(raw)
		}
	}
	return n
}

// Notify stores the notification, pushes `newNotification` to the user's room
// and publishes a notification.created event. Delivery is best effort.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, in NotificationInput) (*models.Notification, error) {
	if userID == uuid.Nil {
		return nil, errors.New("notification recipient is required")
	}

	n := in.build(userID)
	if err := config.CmsGorm.WithContext(ctx).Create(n).Error; err != nil {
		log.Printf("[notifications.notify] ❌ failed to store notification for %s: %v", userID, err)
		return nil, fmt.Errorf("store notification: %w", err)
	}

	s.InvalidateUnreadCount(ctx, userID)

	if p := GetPusher(); p != nil {
		if !p.PushToUser(userID, EventNewNotification, n.Payload()) {
			log.Printf("[notifications.notify] user %s has no open socket", userID)
		}
	}

	PublishAsync(EventNotificationCreated, userID.String(), n.Payload())
	return n, nil
}

// NotifyRoles sends the same notification to every unblocked user holding one of the roles.
func (s *NotificationService) NotifyRoles(ctx context.Context, roles []string, in NotificationInput) int {
	var ids []uuid.UUID
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.User{}).
		Where("role IN ? AND is_blocked = ?", roles, false).
		Pluck("id", &ids).Error; err != nil {
		log.Printf("[notifications.notify_roles] ❌ failed to load recipients: %v", err)
		return 0
	}

	sent := 0
	for _, id := range ids {
		if _, err := s.Notify(ctx, id, in); err == nil {
			sent++
		}
	}
	return sent
}

// NotifyAsync runs Notify detached from the request.
func (s *NotificationService) NotifyAsync(userID uuid.UUID, in NotificationInput) {
	runBackground(func(ctx context.Context) {
		_, _ = s.Notify(ctx, userID, in)
	})
}

// NotifyRolesAsync runs NotifyRoles detached from the request.
func (s *NotificationService) NotifyRolesAsync(roles []string, in NotificationInput) {
	runBackground(func(ctx context.Context) {
		s.NotifyRoles(ctx, roles, in)
	})
}

func unreadCountKey(userID uuid.UUID) string {
	return "notifications:unread:" + userID.String()
}

// UnreadCount returns the number of unread notifications, cached in redis when available.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	if config.RedisClient != nil {
		val, err := config.RedisClient.Get(ctx, unreadCountKey(userID)).Result()
		if err == nil {
			if n, convErr := strconv.ParseInt(val, 10, 64); convErr == nil {
				return n, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("[notifications.unread] ⚠️ redis read failed: %v", err)
		}
	}

	var count int64
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}

	if config.RedisClient != nil {
		if err := config.RedisClient.Set(ctx, unreadCountKey(userID), count, unreadCountTTL).Err(); err != nil {
			log.Printf("[notifications.unread] ⚠️ redis write failed: %v", err)
		}
	}
	return count, nil
}

// InvalidateUnreadCount drops the cached counter after any change.
func (s *NotificationService) InvalidateUnreadCount(ctx context.Context, userID uuid.UUID) {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Del(ctx, unreadCountKey(userID)).Err(); err != nil {
		log.Printf("[notifications.unread] ⚠️ redis delete failed: %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var notificationService *NotificationService

func GetNotificationService() *NotificationService {
	if notificationService == nil {
		notificationService = NewNotificationService()
	}
	return notificationService
}
