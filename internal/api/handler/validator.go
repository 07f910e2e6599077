package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator adapts go-playground/validator to echo.Validator.
// Field names in messages follow the request's json tags.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator assigned to echo.Echo.Validator.
func NewValidator() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &requestValidator{v: v}
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		msgs[i] = describe(fe)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}
