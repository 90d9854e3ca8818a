package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError names one offending request field.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// Validator wraps go-playground/validator and renders failures as a
// field-indexed list the API layer can return verbatim.
type Validator struct {
	validate *validator.Validate
}

var tokenPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func NewValidator() *Validator {
	v := validator.New()

	// report fields by their json name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// token: URL-safe category name (lowercase, digits, hyphens)
	v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
		return tokenPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate checks the struct and returns one entry per offending field, or
// nil when the input is valid.
func (v *Validator) Validate(input interface{}) []FieldError {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Msg: err.Error()}}
	}
	out := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		out = append(out, FieldError{Field: fe.Field(), Msg: fieldMessage(fe.Field(), fe.Tag(), fe.Param())})
	}
	return out
}

func fieldMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "token":
		return fmt.Sprintf("%s must contain only lowercase letters, numbers, and hyphens", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, param)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, tag)
	}
}
