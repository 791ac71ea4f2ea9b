package validator

import (
	"errors"
	"fmt"
	bookingserrors "hotelbooking/internal/bookings/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Details renders the errors as a field to message map for API responses.
func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

type BookingValidator struct {
	validate  *validator.Validate
	logger    *logger.Logger
	maxGuests int
	now       func() time.Time
}

func NewBookingValidator(log *logger.Logger, maxGuests int) *BookingValidator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	bv := &BookingValidator{
		validate:  v,
		logger:    log,
		maxGuests: maxGuests,
		now:       time.Now,
	}

	if err := v.RegisterValidation("max_guests", bv.validateMaxGuests); err != nil {
		log.Fatal("Failed to register 'max_guests' validator",
			"error", err,
		)
	}

	log.Debug("Booking validator initialized", "max_guests", maxGuests)

	return bv
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func (v *BookingValidator) validateMaxGuests(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(v.maxGuests)
}

// Validate checks in after the dates have been normalized to UTC days.
func (v *BookingValidator) Validate(in *model.CreateBookingInput) error {
	var errs ValidationErrors

	if err := v.validate.Struct(in); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return err
		}
		errs = v.translateValidationErrors(validationErrs)
	}

	if !in.ArrivalDate.IsZero() && in.ArrivalDate.Before(model.DateOf(v.now().UTC())) {
		errs = append(errs, ValidationError{
			Field:   "check_in_date",
			Message: bookingserrors.ErrArrivalInPast.Error(),
		})
	}

	if !in.ArrivalDate.IsZero() && !in.DepartureDate.IsZero() && !in.DepartureDate.After(in.ArrivalDate) {
		errs = append(errs, ValidationError{
			Field:   "check_out_date",
			Message: bookingserrors.ErrInvalidDateRange.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (v *BookingValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "max_guests":
			message = fmt.Sprintf("%s must be at most %d", err.Field(), v.maxGuests)
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
