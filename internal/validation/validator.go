package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"activity-feed/internal/models"

	"github.com/go-playground/validator/v10"
)

var metadataFieldPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with the activity feed rules registered
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("product", validateProduct)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("sort_field", validateSortField)
	_ = v.RegisterValidation("sort_direction", validateSortDirection)
	_ = v.RegisterValidation("metadata_field", validateMetadataField)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateProduct(fl validator.FieldLevel) bool {
	return models.IsValidProduct(models.Product(fl.Field().String()))
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(models.TransactionType(fl.Field().String()))
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	return models.IsValidTransactionStatus(models.TransactionStatus(fl.Field().String()))
}

func validateCurrency(fl validator.FieldLevel) bool {
	return models.IsValidCurrency(models.Currency(fl.Field().String()))
}

// validateSortField accepts only fields the search index can order by
func validateSortField(fl validator.FieldLevel) bool {
	return models.IsSortableField(fl.Field().String())
}

// validateSortDirection accepts ASC or DESC in any case
func validateSortDirection(fl validator.FieldLevel) bool {
	direction := strings.ToUpper(fl.Field().String())
	return direction == models.SortDirectionAsc || direction == models.SortDirectionDesc
}

// validateMetadataField restricts metadata keys to a single safe path segment
func validateMetadataField(fl validator.FieldLevel) bool {
	return metadataFieldPattern.MatchString(fl.Field().String())
}

// FormatFieldError renders one failed rule as a client-facing message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "product":
		return "must be a known product"
	case "transaction_type":
		return "must be a known transaction type"
	case "transaction_status":
		return "must be a known transaction status"
	case "currency":
		return "must be a supported currency code"
	case "sort_field":
		return fmt.Sprintf("must be one of: %s", strings.Join(models.SortableFields, ", "))
	case "sort_direction":
		return "must be ASC or DESC"
	case "metadata_field":
		return "must contain only letters, digits, '_' or '-' (max 64)"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// Details flattens validation errors into "field: message" lines. Other
// errors come back as their message.
func Details(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fieldErr.Field(), FormatFieldError(fieldErr)))
	}
	return details
}
