package product_controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductResponse is a product with the figures the form displays next to it.
type ProductResponse struct {
	models.Product
	Pricing  services.PricingSummary  `json:"pricing"`
	Shipping services.ShippingSummary `json:"shipping"`
}

func toResponse(p models.Product, fees services.ShippingFees) ProductResponse {
	return ProductResponse{
		Product:  p,
		Pricing:  services.CalculatePricing(p.CostPrice, p.RetailPrice, p.SalePrice, p.TaxClass),
		Shipping: services.BuildShippingSummary(p.Weight, p.Dimensions, p.ShippingClass, p.Stock, fees),
	}
}

// parseProductID answers 400 itself when the id is malformed.
func parseProductID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return uuid.Nil, false
	}
	return id, true
}

// validateProduct collects every problem with the submitted form.
func validateProduct(ctx context.Context, req *models.ProductRequest) ([]string, error) {
	var errs []string
	db := config.CmsGorm.WithContext(ctx)

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "Product name is required")
	}
	if strings.TrimSpace(req.SKU) == "" {
		errs = append(errs, "SKU is required")
	}
	if strings.TrimSpace(req.MainCategory) == "" {
		errs = append(errs, "Main category is required")
	}
	if strings.TrimSpace(req.ShortDescription) == "" {
		errs = append(errs, "Short description is required")
	}
	if req.RetailPrice <= 0 {
		errs = append(errs, "Retail price must be greater than 0")
	}
	if req.CostPrice < 0 {
		errs = append(errs, "Cost price cannot be negative")
	}
	if req.SalePrice < 0 {
		errs = append(errs, "Sale price cannot be negative")
	} else if req.SalePrice > 0 && req.RetailPrice > 0 && req.SalePrice > req.RetailPrice {
		errs = append(errs, "Sale price cannot exceed retail price")
	}
	if req.Stock < 0 {
		errs = append(errs, "Stock cannot be negative")
	}
	if req.Weight < 0 || req.Dimensions.Length < 0 || req.Dimensions.Width < 0 || req.Dimensions.Height < 0 {
		errs = append(errs, "Weight and dimensions cannot be negative")
	}
	if req.TaxClass != "" && !models.ValidTaxClass(req.TaxClass) {
		errs = append(errs, "Invalid tax class: "+req.TaxClass)
	}
	if req.Status != "" && !models.ValidProductStatus(req.Status) {
		errs = append(errs, "Invalid status: "+req.Status)
	}

	if key := models.NormalizeCategoryKey(req.MainCategory); key != "" {
		var category models.Category
		err := db.Where("key = ?", key).First(&category).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			errs = append(errs, "Category "+key+" does not exist")
		case err != nil:
			return nil, err
		default:
			errs = append(errs, category.ValidateSelections(models.FilterSelections(req.Filters).Clone())...)
		}
	}

	if req.ShippingClass != "" {
		var count int64
		if err := db.Model(&models.ShippingClass{}).Where("key = ?", req.ShippingClass).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			errs = append(errs, "Shipping class "+req.ShippingClass+" does not exist")
		}
	}

	return errs, nil
}

// skuTaken reports whether another product already uses the SKU.
func skuTaken(ctx context.Context, sku string, excludeID uuid.UUID) (bool, error) {
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return false, nil
	}
	var count int64
	q := config.CmsGorm.WithContext(ctx).Model(&models.Product{}).Where("sku = ?", sku)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
