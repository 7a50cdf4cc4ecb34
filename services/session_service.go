package services

import (
	"context"
	"log"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/utils"
	"github.com/google/uuid"
)

// SessionService tracks signed-in staff devices.
type SessionService struct{}

func NewSessionService() *SessionService {
	return &SessionService{}
}

// CreateSession records a freshly issued token.
func (s *SessionService) CreateSession(
	ctx context.Context,
	userID uuid.UUID,
	token string,
	ipAddress string,
	userAgent string,
) (*models.StaffSession, error) {
	device := utils.ParseUserAgent(userAgent)
	now := time.Now()

	session := &models.StaffSession{
		UserID:         userID,
		TokenHash:      GetAuthService().HashToken(token),
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		DeviceType:     device.DeviceType,
		Browser:        device.Browser,
		LastActivityAt: now,
		ExpiresAt:      now.Add(GetJWTService().TTL()),
		IsActive:       true,
	}

	if err := config.CmsGorm.WithContext(ctx).Create(session).Error; err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for user %s (%s/%s)", session.ID, userID, device.DeviceType, device.Browser)
	return session, nil
}

// IsActive reports whether the token belongs to a live session.
func (s *SessionService) IsActive(ctx context.Context, token string) (bool, error) {
	var count int64
	err := config.CmsGorm.WithContext(ctx).
		Model(&models.StaffSession{}).
		Where("token_hash = ? AND is_active = ? AND expires_at > ?", GetAuthService().HashToken(token), true, time.Now()).
		Count(&count).Error
	return count > 0, err
}

// Touch updates the last activity timestamp of the session and its user.
func (s *SessionService) Touch(ctx context.Context, userID uuid.UUID, token string) error {
	now := time.Now()
	db := config.CmsGorm.WithContext(ctx)
	if err := db.Model(&models.StaffSession{}).
		Where("token_hash = ? AND is_active = ?", GetAuthService().HashToken(token), true).
		Update("last_activity_at", now).Error; err != nil {
		log.Printf("[session] failed to update session activity: %v", err)
		return err
	}
	return db.Model(&models.User{}).Where("id = ?", userID).UpdateColumn("last_active_at", now).Error
}

// DeactivateSession marks the session of one token inactive (logout).
func (s *SessionService) DeactivateSession(ctx context.Context, token string) error {
	if err := config.CmsGorm.WithContext(ctx).
		Model(&models.StaffSession{}).
		Where("token_hash = ?", GetAuthService().HashToken(token)).
		Update("is_active", false).Error; err != nil {
		log.Printf("[session] failed to deactivate session: %v", err)
		return err
	}
	return nil
}

// DeactivateAllForUsers signs users out everywhere (password change, block, delete).
func (s *SessionService) DeactivateAllForUsers(ctx context.Context, userIDs ...uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}
	result := config.CmsGorm.WithContext(ctx).
		Model(&models.StaffSession{}).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Update("is_active", false)
	if result.Error != nil {
		log.Printf("[session] failed to deactivate sessions: %v", result.Error)
		return result.Error
	}
	log.Printf("[session] deactivated %d sessions for %d users", result.RowsAffected, len(userIDs))
	return nil
}

// CleanupExpiredSessions removes expired sessions (run periodically)
func (s *SessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	result := config.CmsGorm.WithContext(ctx).
		Where("expires_at < ? OR (is_active = ? AND last_activity_at < ?)",
			time.Now(),
			false,
			time.Now().Add(-7*24*time.Hour),
		).
		Delete(&models.StaffSession{})

	if result.Error != nil {
		log.Printf("[session] failed to cleanup expired sessions: %v", result.Error)
		return 0, result.Error
	}

	log.Printf("[session] cleaned up %d expired sessions", result.RowsAffected)
	return result.RowsAffected, nil
}

// StartCleanupLoop runs CleanupExpiredSessions every interval until ctx is done.
func (s *SessionService) StartCleanupLoop(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cctx, cancel := config.WithTimeout()
				_, _ = s.CleanupExpiredSessions(cctx)
				cancel()
			}
		}
	}()
}

var sessionService *SessionService

func GetSessionService() *SessionService {
	if sessionService == nil {
		sessionService = NewSessionService()
	}
	return sessionService
}
