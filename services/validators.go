package services

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	skuPattern         = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{1,63}$`)
	categoryKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
	registerOnce       sync.Once
)

// ValidSKU accepts 2 to 64 letters, digits, dashes or underscores.
func ValidSKU(sku string) bool {
	return skuPattern.MatchString(strings.TrimSpace(sku))
}

// ValidCategoryKey accepts the normalised (trimmed, lower-case) key format.
func ValidCategoryKey(key string) bool {
	return categoryKeyPattern.MatchString(models.NormalizeCategoryKey(key))
}

// RegisterValidators adds the custom binding tags to gin's validator engine.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Println("⚠️  gin validator engine is not go-playground/validator, custom tags unavailable")
			return
		}
		must := func(tag string, fn validator.Func) {
			if err := v.RegisterValidation(tag, fn); err != nil {
				log.Fatalf("❌ failed to register %s validator: %v", tag, err)
			}
		}
		must("strongpassword", func(fl validator.FieldLevel) bool {
			return GetAuthService().ValidatePassword(fl.Field().String())
		})
		must("sku", func(fl validator.FieldLevel) bool {
			return ValidSKU(fl.Field().String())
		})
		must("category_key", func(fl validator.FieldLevel) bool {
			return ValidCategoryKey(fl.Field().String())
		})
	})
}

// ValidationMessages turns a binding error into readable messages.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "strongpassword":
			msgs = append(msgs, GetAuthService().PasswordProblems(fmt.Sprint(fe.Value()))...)
		case "sku":
			msgs = append(msgs, "SKU may only contain letters, digits, dashes and underscores")
		case "category_key":
			msgs = append(msgs, "Category key may only contain lower-case letters, digits, dashes and underscores")
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()))
		}
	}
	return msgs
}
