package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxLoggedBody = 64 << 10

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL segments to resource types
var pathToResourceType = map[string]string{
	"products":         models.ResourceTypeProduct,
	"categories":       models.ResourceTypeCategory,
	"items":            models.ResourceTypeAttributeItem,
	"shipping-classes": models.ResourceTypeShippingClass,
	"orders":           models.ResourceTypeOrder,
	"users":            models.ResourceTypeUser,
	"profile":          models.ResourceTypeUser,
	"upload":           models.ResourceTypeMedia,
	"hero-sections":    models.ResourceTypeHeroSection,
	"customizations":   models.ResourceTypeCustomization,
	"reports":          models.ResourceTypeReport,
}

// resourceTypeToNameField maps resource types to their name field
var resourceTypeToNameField = map[string]string{
	models.ResourceTypeProduct:       "name",
	models.ResourceTypeCategory:      "name",
	models.ResourceTypeShippingClass: "name",
	models.ResourceTypeOrder:         "order_number",
	models.ResourceTypeUser:          "email",
	models.ResourceTypeHeroSection:   "title",
	models.ResourceTypeCustomization: "customization_type",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   models.ActionCreate,
	"PATCH":  models.ActionUpdate,
	"PUT":    models.ActionUpdate,
	"DELETE": models.ActionDelete,
}

// segmentToActionVerb overrides the method verb for action-style routes. An empty verb
// marks a read-only POST that is not logged.
var segmentToActionVerb = map[string]string{
	"bulk-update":     models.ActionBulkUpdate,
	"bulk-delete":     models.ActionBulkDelete,
	"activate":        models.ActionActivate,
	"deactivate":      models.ActionDeactivate,
	"change-password": models.ActionPassword,
	"single":          models.ActionUpload,
	"toggle":          models.ActionUpdate,
	"status":          models.ActionUpdate,
	"toggle-status":   models.ActionUpdate,
	"email":           models.ActionEmail,
	"preview":         "",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware records every mutating staff request.
// Must be used AFTER StaffAuthMiddleware.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		staffID, ok := GetStaffID(c)
		if !ok {
			log.Printf("[activity-logging] warning: staff info not in context")
			c.Next()
			return
		}
		staffEmail := c.GetString("staffEmail")
		staffRole := c.GetString("staffRole")

		route := c.FullPath()
		resourceType := extractResourceType(route)
		if resourceType == "" {
			c.Next()
			return
		}

		verb := extractAction(c.Request.Method, route)
		if verb == "" {
			c.Next()
			return
		}
		resourceID := extractResourceID(c)
		action := verb + "_" + resourceType

		body := captureBody(c)

		var beforeObject interface{}
		if c.Request.Method != http.MethodPost || strings.Contains(route, "/toggle") {
			beforeObject = fetchResourceFromDB(resourceType, c)
		}
		resourceName := extractResourceName(resourceType, beforeObject)

		var created *responseCapture
		if verb == models.ActionCreate && resourceID == "" {
			created = &responseCapture{ResponseWriter: c.Writer}
			c.Writer = created
		}

		c.Next()

		statusCode := c.Writer.Status()
		if statusCode >= 200 && statusCode < 300 {
			var afterObject interface{}
			if c.Request.Method != http.MethodDelete {
				afterObject = fetchResourceFromDB(resourceType, c)
			}
			if created != nil && statusCode == http.StatusCreated {
				if data := created.data(); data != nil {
					if id, ok := data[resourceIDField(resourceType)]; ok && id != nil {
						resourceID = toString(id)
					}
					if afterObject == nil {
						afterObject = data
					}
				}
			}
			if name := extractResourceName(resourceType, afterObject); name != "" {
				resourceName = name
			}

			changes := services.CreateChanges(beforeObject, afterObject)
			if body != nil {
				changes["request"] = body
			}

			services.LogActivity(services.LogActivityRequest{
				StaffID:      staffID,
				StaffEmail:   staffEmail,
				StaffRole:    staffRole,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Changes:      changes,
				Status:       models.StatusSuccess,
				Context:      c,
			})
			return
		}

		services.LogActivity(services.LogActivityRequest{
			StaffID:      staffID,
			StaffEmail:   staffEmail,
			StaffRole:    staffRole,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			ResourceName: resourceName,
			Changes:      map[string]interface{}{"request": body},
			Status:       models.StatusFailed,
			ErrorMessage: "Request failed with status " + strconv.Itoa(statusCode) + " " + http.StatusText(statusCode),
			Context:      c,
		})
		log.Printf("[activity-logging] failed: %s by %s - status %d", action, staffEmail, statusCode)
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// responseCapture keeps a copy of the response body so creates can be logged
// under the id the handler assigned.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *responseCapture) Write(b []byte) (int, error) {
	if w.body.Len() <= maxLoggedBody {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseCapture) WriteString(s string) (int, error) {
	if w.body.Len() <= maxLoggedBody {
		w.body.WriteString(s)
	}
	return w.ResponseWriter.WriteString(s)
}

// data returns the "data" object of an envelope response, or nil.
func (w *responseCapture) data() map[string]interface{} {
	var env struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.body.Bytes(), &env); err != nil {
		return nil
	}
	return env.Data
}

// resourceIDField names the response field that identifies a new resource; categories
// and shipping classes are addressed by key everywhere else in the log.
func resourceIDField(resourceType string) string {
	switch resourceType {
	case models.ResourceTypeCategory, models.ResourceTypeShippingClass:
		return "key"
	}
	return "id"
}

// extractResourceType walks the route template backwards to the closest known segment.
// e.g., "/api/categories/:key/attributes/:name/items/:item" → "attribute_item"
func extractResourceType(route string) string {
	parts := strings.Split(route, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if resourceType, exists := pathToResourceType[parts[i]]; exists {
			return resourceType
		}
	}
	return ""
}

func extractAction(method, route string) string {
	parts := strings.Split(route, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if verb, exists := segmentToActionVerb[parts[i]]; exists {
			return verb
		}
		if strings.HasPrefix(parts[i], ":") {
			continue
		}
		break
	}
	return methodToActionVerb[method]
}

// extractResourceID joins the route params, e.g. "gifts/colors/Red" for an item.
func extractResourceID(c *gin.Context) string {
	var ids []string
	for _, p := range c.Params {
		ids = append(ids, p.Value)
	}
	return strings.Join(ids, "/")
}

// captureBody reads the JSON body for the log and puts it back for the handler.
// Password fields are masked.
func captureBody(c *gin.Context) map[string]interface{} {
	if c.Request.Body == nil || !strings.HasPrefix(c.ContentType(), "application/json") {
		return nil
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxLoggedBody+1))
	if err != nil {
		return nil
	}
	rest, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(append(raw, rest...)))
	if len(raw) > maxLoggedBody {
		return map[string]interface{}{"truncated": true}
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil
	}
	for k := range body {
		if strings.Contains(strings.ToLower(k), "password") {
			body[k] = "********"
		}
	}
	return body
}

// fetchResourceFromDB loads the resource addressed by the route params.
func fetchResourceFromDB(resourceType string, c *gin.Context) interface{} {
	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.CmsGorm.WithContext(ctx)

	switch resourceType {
	case models.ResourceTypeProduct:
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return nil
		}
		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			return nil
		}
		return product

	case models.ResourceTypeCategory, models.ResourceTypeAttributeItem:
		key := c.Param("key")
		if key == "" {
			return nil
		}
		var category models.Category
		if err := db.Where("key = ?", models.NormalizeCategoryKey(key)).First(&category).Error; err != nil {
			return nil
		}
		if resourceType == models.ResourceTypeAttributeItem {
			if attr, err := category.Attribute(c.Param("name")); err == nil {
				return attr
			}
			return nil
		}
		return category

	case models.ResourceTypeShippingClass:
		key := c.Param("key")
		if key == "" {
			return nil
		}
		var class models.ShippingClass
		if err := db.Where("key = ?", key).First(&class).Error; err != nil {
			return nil
		}
		return class

	case models.ResourceTypeOrder:
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return nil
		}
		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			return nil
		}
		return order

	case models.ResourceTypeHeroSection:
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return nil
		}
		var hero models.HeroSection
		if err := db.First(&hero, "id = ?", id).Error; err != nil {
			return nil
		}
		return hero

	case models.ResourceTypeCustomization:
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return nil
		}
		var custom models.Customization
		if err := db.First(&custom, "id = ?", id).Error; err != nil {
			return nil
		}
		return custom

	case models.ResourceTypeUser:
		idParam := c.Param("id")
		var id uuid.UUID
		if idParam == "" {
			if strings.HasSuffix(c.FullPath(), "/profile") {
				id, _ = GetStaffID(c)
			}
		} else if parsed, err := uuid.Parse(idParam); err == nil {
			id = parsed
		}
		if id == uuid.Nil {
			return nil
		}
		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			return nil
		}
		return user.ToResponse()
	}
	return nil
}

// extractResourceName extracts the name/identifier from a resource object
func extractResourceName(resourceType string, obj interface{}) string {
	if obj == nil {
		return ""
	}
	if attr, ok := obj.(*models.CategoryAttribute); ok {
		return attr.Name
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return ""
	}

	var resourceMap map[string]interface{}
	if err := json.Unmarshal(data, &resourceMap); err != nil {
		return ""
	}

	fieldName := resourceTypeToNameField[resourceType]
	if fieldName == "" {
		return ""
	}

	if value, exists := resourceMap[fieldName]; exists {
		return toString(value)
	}
	return ""
}

// toString converts any value to string
func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
