// Package validation registers the custom binding rules used by request DTOs and turns
// validator errors into field-level messages.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/daterange"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterBindings adds iso_date and car_status to gin's default validator.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground validator")
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("iso_date", validateISODate); err != nil {
		return fmt.Errorf("register iso_date: %w", err)
	}
	if err := v.RegisterValidation("car_status", validateCarStatus); err != nil {
		return fmt.Errorf("register car_status: %w", err)
	}
	return nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := daterange.ParseDay(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validateCarStatus(fl validator.FieldLevel) bool {
	return car.Status(strings.TrimSpace(fl.Field().String())).IsKnown()
}

// Details flattens a binding error into per-field messages. Errors that are not validation
// errors yield nil.
func Details(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", fe.Field())
		case "min":
			msg = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		case "gt":
			msg = fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		case "url":
			msg = fmt.Sprintf("%s must be a URL", fe.Field())
		case "iso_date":
			msg = fmt.Sprintf("%s must be a YYYY-MM-DD date", fe.Field())
		case "car_status":
			msg = fmt.Sprintf("%s must be one of: available soft_locked booked maintenance", fe.Field())
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
