package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// formValidator adapts go-playground/validator to the echo.Validator
// interface. Error messages name the form field (mascota_id, fecha, ...)
// rather than the Go struct field, since that is what the clinic frontend
// submitted.
type formValidator struct {
	validate *validator.Validate
}

// NewValidator builds the validator assigned to echo.Echo.Validator.
func NewValidator() *formValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return &formValidator{validate: v}
}

func (fv *formValidator) Validate(i any) error {
	err := fv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	missing := make([]string, 0, len(ve))
	other := make([]string, 0)
	for _, fe := range ve {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		other = append(other, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
	}

	parts := make([]string, 0, 2)
	if len(missing) > 0 {
		parts = append(parts, "missing fields: "+strings.Join(missing, ", "))
	}
	if len(other) > 0 {
		parts = append(parts, strings.Join(other, "; "))
	}
	return errors.New(strings.Join(parts, "; "))
}
