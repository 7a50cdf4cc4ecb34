package category_controller

import (
	"context"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
)

// loadCatalogue reads every category with its product count.
func loadCatalogue(ctx context.Context) ([]models.Category, error) {
	db := config.CmsGorm.WithContext(ctx)

	categories := make([]models.Category, 0)
	if err := db.Order("sort_order ASC").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	var counts []struct {
		MainCategory string
		Total        int64
	}
	if err := db.Model(&models.Product{}).
		Select("main_category, COUNT(*) AS total").
		Group("main_category").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byKey := make(map[string]int64, len(counts))
	for _, row := range counts {
		byKey[row.MainCategory] = row.Total
	}
	for i := range categories {
		categories[i].ProductCount = byKey[categories[i].Key]
	}
	return categories, nil
}

func countProducts(ctx context.Context, key string) (int64, error) {
	var n int64
	err := config.CmsGorm.WithContext(ctx).Model(&models.Product{}).Where("main_category = ?", key).Count(&n).Error
	return n, err
}
