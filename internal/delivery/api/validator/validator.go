// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"maps"
	"reflect"
	"slices"
	"strings"

	"jobboard/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request bodies bound by echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Describe renders the field errors in err as "field: rule" pairs sorted by field,
// for example "email: email; password: max=72". It returns "" when err carries none.
func Describe(err error) string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return ""
	}

	rules := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		rules[fieldErr.Field()] = rule
	}

	parts := make([]string, 0, len(rules))
	for _, field := range slices.Sorted(maps.Keys(rules)) {
		parts = append(parts, field+": "+rules[field])
	}

	return strings.Join(parts, "; ")
}
