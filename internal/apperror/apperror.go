// Package apperror maps payload validation failures to per-field messages.
package apperror

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"highfields/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	errRequired           = errors.New("is required")
	errDonationAmount     = fmt.Errorf("must be between %.2f and %d", types.MinDonationAmount, types.MaxDonationAmount)
	errSelectMinistryArea = errors.New("select at least one ministry area")
	errUnknownMinistry    = errors.New("is not a known ministry area")
	errUnknownDonation    = errors.New("must be one-time or recurring")
)

var tagErrors = map[string]error{
	"notblank":       errRequired,
	"required":       errRequired,
	"donationamount": errDonationAmount,
	"ministryarea":   errUnknownMinistry,
	"oneof":          errUnknownDonation,
}

// FieldError is one entry of a 400 response body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidator returns a validator that reports JSON field names and knows the
// custom tags used on the create payloads.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("ministryarea", func(fl validator.FieldLevel) bool {
		return types.MinistryArea(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("donationamount", func(fl validator.FieldLevel) bool {
		return types.ValidDonationAmount(fl.Field().Float())
	})

	return v
}

// FieldErrors converts validator errors into a stable list of field messages.
// Errors that did not come from the validator yield nil.
func FieldErrors(err error) []FieldError {
	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return nil
	}

	out := make([]FieldError, 0, len(validationErr))
	for _, e := range validationErr {
		field := jsonPath(e.Namespace())

		msg := fmt.Sprintf("%s is invalid", field)
		switch {
		case e.Tag() == "min" && e.Kind() == reflect.Slice:
			msg = errSelectMinistryArea.Error()
		default:
			if v, ok := tagErrors[e.Tag()]; ok {
				msg = v.Error()
			}
		}

		out = append(out, FieldError{Field: field, Message: msg})
	}

	return out
}

// jsonPath drops the struct name from a namespace like "VolunteerCreate.ministry_areas[0]".
func jsonPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
