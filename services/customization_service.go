package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCustomizationNotFound = errors.New("customization not found")

// CustomizationService backs the staff moderation of customer designs.
type CustomizationService struct{}

func NewCustomizationService() *CustomizationService {
	return &CustomizationService{}
}

// List returns a page of customizations, newest first, with product and customer names filled in.
func (s *CustomizationService) List(ctx context.Context, f models.CustomizationFilter, limit, offset int) ([]models.Customization, int64, error) {
	db := config.CmsGorm.WithContext(ctx)
	query := db.Model(&models.Customization{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		query = query.Where("customization_type = ?", f.Type)
	}
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		like := "%" + term + "%"
		query = query.Where(
			"LOWER(custom_message) LIKE ? OR product_id IN (?) OR user_id IN (?)",
			like,
			db.Model(&models.Product{}).Select("id").Where("LOWER(name) LIKE ?", like),
			db.Model(&models.User{}).Select("id").Where("LOWER(email) LIKE ? OR LOWER(first_name || ' ' || last_name) LIKE ?", like, like),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	list := make([]models.Customization, 0)
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	if err := s.attachNames(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Get loads one customization with names filled in.
func (s *CustomizationService) Get(ctx context.Context, id uuid.UUID) (*models.Customization, error) {
	var c models.Customization
	if err := config.CmsGorm.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomizationNotFound
		}
		return nil, err
	}
	list := []models.Customization{c}
	if err := s.attachNames(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// UpdateStatus moves a customization to status and tells the customer. It returns the
// previous status.
func (s *CustomizationService) UpdateStatus(ctx context.Context, id uuid.UUID, status, notes string) (*models.Customization, string, error) {
	var (
		c        models.Customization
		previous string
	)
	err := config.CmsGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomizationNotFound
			}
			return err
		}
		previous = c.Status
		if previous == status {
			return nil
		}
		c.Status = status
		return tx.Model(&c).Update("status", status).Error
	})
	if err != nil {
		return nil, "", err
	}

	list := []models.Customization{c}
	if err := s.attachNames(ctx, list); err != nil {
		return nil, "", err
	}
	c = list[0]

	if previous != status {
		message := fmt.Sprintf("Your %s design is now %s", c.CustomizationType, status)
		if notes != "" {
			message += ": " + notes
		}
		GetNotificationService().NotifyAsync(c.UserID, NotificationInput{
			Title:        "Customization " + status,
			Message:      message,
			Type:         models.NotificationGift,
			RelatedID:    c.ID.String(),
			RelatedModel: "Customization",
		})
		PublishAsync(EventCustomizationStatusChanged, c.ID.String(), map[string]interface{}{
			"customization_id": c.ID,
			"previous":         previous,
			"status":           status,
			"user_id":          c.UserID,
		})
	}
	return &c, previous, nil
}

func (s *CustomizationService) attachNames(ctx context.Context, list []models.Customization) error {
	if len(list) == 0 {
		return nil
	}
	productIDs := make([]uuid.UUID, 0, len(list))
	userIDs := make([]uuid.UUID, 0, len(list))
	for _, c := range list {
		productIDs = append(productIDs, c.ProductID)
		userIDs = append(userIDs, c.UserID)
	}

	db := config.CmsGorm.WithContext(ctx)
	var products []models.Product
	if err := db.Select("id", "name").Where("id IN ?", uniqueIDs(productIDs)).Find(&products).Error; err != nil {
		return fmt.Errorf("customization products: %w", err)
	}
	var users []models.User
	if err := db.Select("id", "first_name", "last_name", "email").Where("id IN ?", uniqueIDs(userIDs)).Find(&users).Error; err != nil {
		return fmt.Errorf("customization customers: %w", err)
	}

	names := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	customers := make(map[uuid.UUID]*models.User, len(users))
	for i := range users {
		customers[users[i].ID] = &users[i]
	}
	for i := range list {
		list[i].ProductName = names[list[i].ProductID]
		if u := customers[list[i].UserID]; u != nil {
			list[i].CustomerName = u.FullName()
			list[i].CustomerEmail = u.Email
		}
	}
	return nil
}

var customizationService *CustomizationService

func GetCustomizationService() *CustomizationService {
	if customizationService == nil {
		customizationService = NewCustomizationService()
	}
	return customizationService
}
