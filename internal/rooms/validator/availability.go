package validator

import (
	"errors"
	"fmt"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	var messages []string
	for field, msg := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", field, msg))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for field, msg := range v {
		details[field] = msg
	}
	return details
}

type AvailabilityValidator struct {
	validate  *validator.Validate
	maxGuests int
	now       func() time.Time
}

func NewAvailabilityValidator(log *logger.Logger, maxGuests int) *AvailabilityValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	av := &AvailabilityValidator{
		validate:  v,
		maxGuests: maxGuests,
		now:       time.Now,
	}

	if err := v.RegisterValidation("max_guests", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(av.maxGuests)
	}); err != nil {
		log.Fatal("Failed to register 'max_guests' validator", "error", err)
	}

	return av
}

// Validate applies the same date and guest rules as booking creation.
func (v *AvailabilityValidator) Validate(c *model.AvailabilityCriteria) error {
	errs := ValidationErrors{}

	if err := v.validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		for _, fe := range validationErrs {
			switch fe.Tag() {
			case "required":
				errs[fe.Field()] = fmt.Sprintf("%s is required", fe.Field())
			case "min":
				errs[fe.Field()] = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
			case "max_guests":
				errs[fe.Field()] = fmt.Sprintf("%s must be at most %d", fe.Field(), v.maxGuests)
			default:
				errs[fe.Field()] = fe.Error()
			}
		}
	}

	if !c.ArrivalDate.IsZero() && c.ArrivalDate.Before(model.DateOf(v.now().UTC())) {
		errs["check_in_date"] = "check-in date cannot be in the past"
	}
	if !c.ArrivalDate.IsZero() && !c.DepartureDate.IsZero() && !c.DepartureDate.After(c.ArrivalDate) {
		errs["check_out_date"] = "check-out date must be after check-in date"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
