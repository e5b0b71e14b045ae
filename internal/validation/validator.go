package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError represents a single validation error
type FieldError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Validator checks request payloads against their declarative schemas.
// It always reports the complete set of field errors in one pass so a
// client can render every problem at once.
type Validator struct {
	validate *validator.Validate
}

// New creates a new validator instance. Field names in errors come from
// the struct's json tags.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates a request payload and returns every field error found,
// or nil when the payload is valid.
func (v *Validator) Struct(payload interface{}) []FieldError {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: the payload was not a struct at all
		return []FieldError{{Field: "", Message: "invalid request payload"}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Value:   errorValue(fe),
		})
	}
	return fieldErrors
}

// messageFor translates a validator tag into a user-facing message
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "invalid email format"
	case "url":
		return "invalid URL format"
	case "uuid":
		return "invalid UUID format"
	case "hexcolor":
		return "must be a hex color (e.g. #3B82F6)"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// errorValue returns the offending value for inclusion in the error,
// omitting empty values and anything that is not a simple scalar
func errorValue(fe validator.FieldError) interface{} {
	switch fe.Kind() {
	case reflect.String:
		if s, ok := fe.Value().(string); ok && s != "" {
			return s
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64, reflect.Bool:
		return fe.Value()
	default:
		return nil
	}
}
